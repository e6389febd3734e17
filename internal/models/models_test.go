package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAddress(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{
			name: "complete",
			addr: Address{
				Street: "Rua das Flores", Number: "1000", Complement: "Apto 101",
				District: "Centro", City: "São Paulo", State: "SP", PostalCode: "12345-678",
			},
			want: "Rua das Flores, 1000, Apto 101 - Centro - São Paulo/SP - 12345-678",
		},
		{
			name: "street only",
			addr: Address{Street: "Av. Paulista"},
			want: "Av. Paulista",
		},
		{
			name: "no complement",
			addr: Address{Street: "Rua A", Number: "1", City: "Recife", State: "PE"},
			want: "Rua A, 1 - Recife/PE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.FullAddress())
		})
	}
}

func TestSaleItemBeforeSave(t *testing.T) {
	item := SaleItem{Quantity: 3, UnitPrice: 2.5}
	require.NoError(t, item.BeforeSave(nil))
	require.NotNil(t, item.Subtotal)
	assert.Equal(t, 7.5, *item.Subtotal)

	// Without a quantity the subtotal stays unset rather than zero.
	empty := SaleItem{UnitPrice: 10}
	require.NoError(t, empty.BeforeSave(nil))
	assert.Nil(t, empty.Subtotal)

	// A zero price is a valid input, not an absent one.
	free := SaleItem{Quantity: 2}
	require.NoError(t, free.BeforeSave(nil))
	require.NotNil(t, free.Subtotal)
	assert.Zero(t, *free.Subtotal)
}

func TestSaleBeforeCreate(t *testing.T) {
	s := Sale{}
	require.NoError(t, s.BeforeCreate(nil))
	assert.WithinDuration(t, time.Now(), s.SoldAt, time.Second)

	when := time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)
	explicit := Sale{SoldAt: when}
	require.NoError(t, explicit.BeforeCreate(nil))
	assert.True(t, explicit.SoldAt.Equal(when))
}

func TestAddressBeforeCreateCountryDefault(t *testing.T) {
	a := Address{}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, "Brazil", a.Country)

	b := Address{Country: "Chile"}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, "Chile", b.Country)
}
