package delivery

import (
	"context"
	"database/sql"
	"errors"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) CreateShop(ctx context.Context, shop *Shop) error {
	_, err := s.db.ExecContext(ctx,
		`insert into shops(id, name, category, min_price, city, street, zip_code, description, created_at)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		shop.ID, shop.Name, shop.Category, shop.MinPrice,
		shop.Address.City, shop.Address.Street, shop.Address.ZipCode,
		shop.Description, shop.CreatedAt,
	)
	return err
}

func (s *PGStore) GetShop(ctx context.Context, id string) (*Shop, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, category, min_price, city, street, zip_code, description, created_at
		 from shops where id=$1`, id)
	var shop Shop
	err := row.Scan(&shop.ID, &shop.Name, &shop.Category, &shop.MinPrice,
		&shop.Address.City, &shop.Address.Street, &shop.Address.ZipCode,
		&shop.Description, &shop.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

func (s *PGStore) ListShops(ctx context.Context) ([]*Shop, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, name, category, min_price, city, street, zip_code, description, created_at
		 from shops order by created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*Shop
	for rows.Next() {
		var shop Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Category, &shop.MinPrice,
			&shop.Address.City, &shop.Address.Street, &shop.Address.ZipCode,
			&shop.Description, &shop.CreatedAt); err != nil {
			return nil, err
		}
		shops = append(shops, &shop)
	}
	return shops, rows.Err()
}

func (s *PGStore) CreateItem(ctx context.Context, item *Item) error {
	_, err := s.db.ExecContext(ctx,
		`insert into items(id, shop_id, name, description, price, recommended, created_at)
		 values($1,$2,$3,$4,$5,$6,$7)`,
		item.ID, item.ShopID, item.Name, item.Description, item.Price, item.Recommended, item.CreatedAt,
	)
	return err
}

func (s *PGStore) GetItem(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, shop_id, name, description, price, recommended, created_at
		 from items where id=$1`, id)
	var item Item
	err := row.Scan(&item.ID, &item.ShopID, &item.Name, &item.Description,
		&item.Price, &item.Recommended, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *PGStore) ListItems(ctx context.Context, shopID string) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, shop_id, name, description, price, recommended, created_at
		 from items where shop_id=$1 order by created_at`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.ShopID, &item.Name, &item.Description,
			&item.Price, &item.Recommended, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (s *PGStore) CreateOrder(ctx context.Context, order *Order, dlv *Delivery) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`insert into deliveries(id, city, street, zip_code, created_at) values($1,$2,$3,$4,$5)`,
		dlv.ID, dlv.Address.City, dlv.Address.Street, dlv.Address.ZipCode, dlv.CreatedAt,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`insert into orders(id, user_email, status, total_price, delivery_id, created_at)
		 values($1,$2,$3,$4,$5,$6)`,
		order.ID, order.UserEmail, order.Status, order.TotalPrice, order.DeliveryID, order.CreatedAt,
	); err != nil {
		return err
	}
	for _, line := range order.Items {
		if _, err := tx.ExecContext(ctx,
			`insert into order_items(order_id, item_id, name, price, quantity) values($1,$2,$3,$4,$5)`,
			order.ID, line.ItemID, line.Name, line.Price, line.Quantity,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PGStore) GetOrder(ctx context.Context, id string) (*Order, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, user_email, status, total_price, delivery_id, created_at from orders where id=$1`, id)
	var order Order
	err := row.Scan(&order.ID, &order.UserEmail, &order.Status, &order.TotalPrice,
		&order.DeliveryID, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`select item_id, name, price, quantity from order_items where order_id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var line OrderItem
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, line)
	}
	return &order, rows.Err()
}
