package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"converso.io/billing/models"
)

// SpecificationRepository resolves the discount/adjustment
// specifications active for a workspace at a point in time. No rows
// means no extra items.
type SpecificationRepository interface {
	ListActiveSpecifications(workspaceId int, asOf time.Time) ([]models.PaymentItemSpecification, error)
}

type SpecificationService struct {
	db *sql.DB
}

func NewSpecificationRepository(db *sql.DB) SpecificationRepository {
	return &SpecificationService{db: db}
}

func (ss *SpecificationService) ListActiveSpecifications(workspaceId int, asOf time.Time) ([]models.PaymentItemSpecification, error) {
	rows, err := ss.db.Query(`SELECT id, workspace_id, type, channel, unit_price, valid_from, valid_until
		FROM payment_item_specifications
		WHERE workspace_id = ? AND valid_from <= ? AND valid_until >= ?`,
		workspaceId, asOf, asOf)
	if err != nil {
		return nil, errors.Wrapf(err, "listing specifications of workspace %d", workspaceId)
	}
	defer rows.Close()

	var specs []models.PaymentItemSpecification
	for rows.Next() {
		var spec models.PaymentItemSpecification
		err = rows.Scan(&spec.Id, &spec.WorkspaceId, &spec.Type, &spec.Channel,
			&spec.UnitPrice, &spec.ValidFrom, &spec.ValidUntil)
		if err != nil {
			return nil, errors.Wrap(err, "scanning specification row")
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}
