package product

import (
	"errors"

	producterrors "go-crm/internal/product/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return producterrors.ErrProductNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_products_org_name" {
			return producterrors.ErrProductAlreadyExists
		}
		if pgErr.Code == "23503" {
			return producterrors.ErrProductInUse
		}
	}

	return err
}
