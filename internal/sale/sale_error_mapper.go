package sale

import (
	"errors"

	saleerrors "go-crm/internal/sale/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return saleerrors.ErrSaleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_sales_org_number" {
		return saleerrors.ErrSaleNumberConflict
	}

	return err
}

// mapLookupError turns a missing row into notFound, leaving other errors untouched.
func mapLookupError(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
