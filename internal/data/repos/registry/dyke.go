package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type DykeRepo interface {
	Create(dbc dbctx.Context, dyke *domain.Dyke) (*domain.Dyke, error)
	GetByID(dbc dbctx.Context, id int) (*domain.Dyke, error)
	List(dbc dbctx.Context) ([]domain.Dyke, error)
	Delete(dbc dbctx.Context, id int) error
}

type dykeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDykeRepo(db *gorm.DB, baseLog *logger.Logger) DykeRepo {
	return &dykeRepo{db: db, log: baseLog.With("repo", "DykeRepo")}
}

func (r *dykeRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *dykeRepo) Create(dbc dbctx.Context, dyke *domain.Dyke) (*domain.Dyke, error) {
	if err := r.conn(dbc).Create(dyke).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return dyke, nil
}

func (r *dykeRepo) GetByID(dbc dbctx.Context, id int) (*domain.Dyke, error) {
	var dyke domain.Dyke
	err := r.conn(dbc).Preload("Crossections").First(&dyke, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("dyke %d not found", id)
		}
		return nil, apperr.FromDB(err)
	}
	return &dyke, nil
}

func (r *dykeRepo) List(dbc dbctx.Context) ([]domain.Dyke, error) {
	var dykes []domain.Dyke
	if err := r.conn(dbc).Preload("Crossections").Order("id").Find(&dykes).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return dykes, nil
}

// Delete refuses to remove a dyke that still owns crossections;
// referential integrity here is a guard, not a cascade.
func (r *dykeRepo) Delete(dbc dbctx.Context, id int) error {
	conn := r.conn(dbc)

	var count int64
	if err := conn.Model(&domain.Crossection{}).Where("dyke_id = ?", id).Count(&count).Error; err != nil {
		return apperr.FromDB(err)
	}
	if count > 0 {
		return apperr.Validationf("dyke %d still has %d crossection(s)", id, count)
	}

	res := conn.Delete(&domain.Dyke{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("dyke %d not found", id)
	}
	return nil
}
