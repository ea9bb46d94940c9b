package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreCreateOrderIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	order := &Order{
		ID:        "order-1",
		UserEmail: "a@b.com",
		Status:    StatusRequested,
		Items: []OrderItem{
			{ItemID: "item-1", Name: "fried chicken", Price: 18000, Quantity: 1},
		},
		TotalPrice: 18000,
		DeliveryID: "dlv-1",
		CreatedAt:  now,
	}
	dlv := &Delivery{
		ID:        "dlv-1",
		Address:   Address{City: "seoul", Street: "teheran-ro", ZipCode: "06236"},
		CreatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("insert into deliveries").
		WithArgs("dlv-1", "seoul", "teheran-ro", "06236", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into orders").
		WithArgs("order-1", "a@b.com", string(StatusRequested), 18000, "dlv-1", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into order_items").
		WithArgs("order-1", "item-1", "fried chicken", 18000, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := NewPGStore(db)
	if err := store.CreateOrder(context.Background(), order, dlv); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreCreateOrderRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("insert into deliveries").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	store := NewPGStore(db)
	err = store.CreateOrder(context.Background(), &Order{ID: "o"}, &Delivery{ID: "d"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreGetShopNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select id, name, category.*from shops where id=").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	store := NewPGStore(db)
	if _, err := store.GetShop(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
