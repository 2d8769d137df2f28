package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mitrofanovm/car-rental-backend/internal/migrations"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

func getTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, storage *Storage, email string) string {
	t.Helper()
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	uid, err := storage.CreateUser(context.Background(), models.User{
		UID:          "11111111-1111-1111-1111-111111111111",
		Email:        email,
		PasswordHash: &hash,
		Fullname:     "Ivan Petrov",
		Provider:     models.ProviderLocal,
		Role:         "user",
	})
	require.NoError(t, err)
	return uid
}

func testOrder(carID int, userUID string) models.Order {
	return models.Order{
		Status:        models.OrderStatusPending,
		StartTime:     time.Date(2024, 11, 10, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 11, 12, 10, 0, 0, 0, time.UTC),
		PaymentMethod: "credit_card",
		Total:         200,
		CarID:         carID,
		UserUID:       userUID,
		CreatedBy:     "Ivan Petrov",
		UpdatedBy:     "Ivan Petrov",
	}
}

func TestCreateOrder_FlipsCarAvailability(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")

	id, err := storage.CreateOrder(ctx, testOrder(1, uid))
	require.NoError(t, err)
	require.Greater(t, id, 0)

	order, err := storage.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.OrderNo)
	require.NotNil(t, order.Car)
	assert.False(t, order.Car.IsAvailable, "car must become unavailable after order creation")
	require.NotNil(t, order.User)
	assert.Equal(t, "ivan@example.com", order.User.Email)
}

func TestCancelOrder_RestoresCarAvailability(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")
	id, err := storage.CreateOrder(ctx, testOrder(1, uid))
	require.NoError(t, err)

	require.NoError(t, storage.CancelOrder(ctx, id, 1))

	order, err := storage.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	assert.True(t, order.Car.IsAvailable, "car must become available after cancellation")
}

func TestMarkOrderPaid(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")
	id, err := storage.CreateOrder(ctx, testOrder(1, uid))
	require.NoError(t, err)

	rows, err := storage.MarkOrderPaid(ctx, id, "INV/2024/11/10/1", "receipt-data")
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	order, err := storage.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	require.NotNil(t, order.OrderNo)
	assert.Equal(t, "INV/2024/11/10/1", *order.OrderNo)
	require.NotNil(t, order.Receipt)
	assert.Equal(t, "receipt-data", *order.Receipt)

	rows, err = storage.MarkOrderPaid(ctx, 99999, "INV/2024/11/10/2", "receipt-data")
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestListOrders_FilterByUser(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")
	_, err := storage.CreateOrder(ctx, testOrder(1, uid))
	require.NoError(t, err)
	_, err = storage.CreateOrder(ctx, testOrder(2, uid))
	require.NoError(t, err)

	all, err := storage.ListOrders(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := storage.ListOrders(ctx, &uid, 10, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other := "22222222-2222-2222-2222-222222222222"
	none, err := storage.ListOrders(ctx, &other, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountOrders(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")
	_, err := storage.CreateOrder(ctx, testOrder(1, uid))
	require.NoError(t, err)

	count, err := storage.CountOrders(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = storage.CountOrders(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpdateCar(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	car, err := storage.GetCar(ctx, 1)
	require.NoError(t, err)

	car.Price = 150
	rows, err := storage.UpdateCar(ctx, *car, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	updated, err := storage.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)

	rows, err = storage.UpdateCar(ctx, *car, 99999)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestUsers(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ivan@example.com")

	user, err := storage.GetUserByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, user.UID)
	assert.Equal(t, models.ProviderLocal, user.Provider)

	_, err = storage.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, sql.ErrNoRows)

	rows, err := storage.LinkGoogleAccount(ctx, uid, "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	linked, err := storage.GetUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderGoogle, linked.Provider)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "google-sub-1", *linked.GoogleID)
}
