package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

func testOrder() *models.Order {
	orderNo := "INV/2024/11/5/17"
	promo := "NEWUSER"
	return &models.Order{
		ID:        1,
		OrderNo:   &orderNo,
		Status:    models.OrderStatusPaid,
		StartTime: time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC),
		PromoCode: &promo,
		Total:     150,
		CreatedAt: time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC),
		Car:       &models.Car{ID: 2, Name: "Toyota Avanza", Price: 100},
		User:      &models.User{UID: "uid-1", Fullname: "Ivan Petrov"},
	}
}

func TestRender(t *testing.T) {
	doc, err := Render(testOrder())
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, "INV/2024/11/5/17")
	assert.Contains(t, text, "Ivan Petrov")
	assert.Contains(t, text, "Toyota Avanza")
	assert.Contains(t, text, "Promo      : NEWUSER")
	assert.Contains(t, text, "TOTAL      : 150.00")
}

func TestRender_missingProjections(t *testing.T) {
	order := testOrder()
	order.Car = nil

	_, err := Render(order)
	assert.Error(t, err)
}

func TestRender_noInvoiceNumber(t *testing.T) {
	order := testOrder()
	order.OrderNo = nil

	_, err := Render(order)
	assert.Error(t, err)
}
