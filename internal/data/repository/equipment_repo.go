package repository

import (
	"context"
	"fmt"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/entity"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
	FindAll(ctx context.Context, search string) ([]*entity.Equipment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EquipmentStatus) error
	Count(ctx context.Context) (int64, error)
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

const equipmentColumns = `id, name, category, price, status, image_url, created_at, updated_at`

func (r *equipmentRepository) Create(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, category, price, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Category,
		equipment.Price,
		equipment.Status,
		equipment.ImageURL,
		equipment.CreatedAt,
		equipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("name", equipment.Name),
		)
		return fmt.Errorf("create equipment %s: %w", equipment.Name, err)
	}

	return nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	equipment, err := r.scanEquipment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find equipment by ID",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return nil, fmt.Errorf("find equipment by ID %s: %w", id.String(), err)
	}

	return equipment, nil
}

func (r *equipmentRepository) FindAll(ctx context.Context, search string) ([]*entity.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to find equipment", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("find equipment: %w", err)
	}
	defer rows.Close()

	var items []*entity.Equipment
	for rows.Next() {
		equipment, err := r.scanEquipment(rows)
		if err != nil {
			r.log.Error("Failed to scan equipment row", zap.Error(err))
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		items = append(items, equipment)
	}

	return items, nil
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EquipmentStatus) error {
	query := `UPDATE equipment SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update equipment status",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update equipment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", id.String())
	}

	return nil
}

func (r *equipmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&count); err != nil {
		r.log.Error("Failed to count equipment", zap.Error(err))
		return 0, fmt.Errorf("count equipment: %w", err)
	}
	return count, nil
}

func (r *equipmentRepository) scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var equipment entity.Equipment
	err := row.Scan(
		&equipment.ID,
		&equipment.Name,
		&equipment.Category,
		&equipment.Price,
		&equipment.Status,
		&equipment.ImageURL,
		&equipment.CreatedAt,
		&equipment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}
