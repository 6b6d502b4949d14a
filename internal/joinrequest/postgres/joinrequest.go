package postgres

import (
	"errors"

	"github.com/sanjaygurung/wildfolio/internal/joinrequest"
	"gorm.io/gorm"
)

// JoinRequestRepository implements joinrequest.Repository using GORM
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) joinrequest.Repository {
	return &JoinRequestRepository{db: db}
}

func (r *JoinRequestRepository) Create(req *joinrequest.JoinRequest) error {
	return r.db.Create(req).Error
}

func (r *JoinRequestRepository) GetByID(id int64) (*joinrequest.JoinRequest, error) {
	var req joinrequest.JoinRequest
	err := r.db.First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joinrequest.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *JoinRequestRepository) List() ([]*joinrequest.JoinRequest, error) {
	var requests []*joinrequest.JoinRequest
	err := r.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *JoinRequestRepository) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&joinrequest.JoinRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return joinrequest.ErrRequestNotFound
	}
	return nil
}
