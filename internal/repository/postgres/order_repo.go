package postgres

import (
	"time"

	"order-review-svc/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type OrderPostgresRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db, now: time.Now}
}

// Save inserts a new order with all of its lines, or, for a stored order,
// updates its status and records the change. Both paths run in one transaction.
func (r *OrderPostgresRepo) Save(o *models.Order) error {
	if o.ID == 0 {
		return r.create(o)
	}
	return r.updateStatus(o)
}

func (r *OrderPostgresRepo) create(o *models.Order) error {
	for i := range o.Lines {
		o.Lines[i].OrderID = 0
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	return errors.Wrap(err, "create order")
}

func (r *OrderPostgresRepo) updateStatus(o *models.Order) error {
	changedBy := ""
	if o.Customer != nil {
		changedBy = o.Customer.Email
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Order
		if err := tx.Select("id, status").Where("id = ?", o.ID).First(&current).Error; err != nil {
			return notFound(err)
		}

		if err := tx.Model(&models.Order{}).
			Where("id = ?", o.ID).
			Update("status", o.Status).Error; err != nil {
			return err
		}

		_, err := sq.Insert("order_status_changes").
			Columns("order_id", "from_status", "to_status", "changed_by", "changed_at").
			Values(o.ID, string(current.Status), string(o.Status), changedBy, r.now().UTC()).
			PlaceholderFormat(sq.Dollar).
			RunWith(tx.CommonDB()).
			Exec()
		return err
	})
	return errors.Wrapf(err, "update status of order %d", o.ID)
}

func (r *OrderPostgresRepo) FindByID(id uint) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Lines").
		Preload("Customer").
		Preload("Restaurant").
		Where("id = ?", id).
		First(&o)
	if q.Error != nil {
		return models.Order{}, errors.Wrapf(notFound(q.Error), "order %d", id)
	}
	return o, nil
}

func (r *OrderPostgresRepo) FindAllByCustomer(customerID uint) ([]models.Order, error) {
	out := []models.Order{}
	q := r.db.Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&out)
	return out, errors.Wrapf(q.Error, "orders of customer %d", customerID)
}

// StatusHistory lists the recorded status changes of an order, oldest first.
func (r *OrderPostgresRepo) StatusHistory(orderID uint) ([]models.OrderStatusChange, error) {
	rows, err := sq.Select("id", "order_id", "from_status", "to_status", "changed_by", "changed_at").
		From("order_status_changes").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		RunWith(r.db.CommonDB()).
		Query()
	if err != nil {
		return nil, errors.Wrapf(err, "status history of order %d", orderID)
	}
	defer rows.Close()

	out := []models.OrderStatusChange{}
	for rows.Next() {
		var c models.OrderStatusChange
		var changedBy *string
		if err := rows.Scan(&c.ID, &c.OrderID, &c.FromStatus, &c.ToStatus, &changedBy, &c.ChangedAt); err != nil {
			return nil, errors.Wrap(err, "scan status change")
		}
		if changedBy != nil {
			c.ChangedBy = *changedBy
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate status changes")
}
