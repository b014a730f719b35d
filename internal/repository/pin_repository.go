package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"carousel/internal/models"
)

// ErrPinNotFound возвращается и для несуществующего, и для синтаксически
// неверного идентификатора: ошибка разбора не покидает границу хранилища.
var ErrPinNotFound = errors.New("пин не найден")

type PinRepositoryImpl struct {
	db *sqlx.DB
}

func NewPinRepository(db *sqlx.DB) *PinRepositoryImpl {
	return &PinRepositoryImpl{db: db}
}

// pinRow - строка таблицы pins. Идентификатор и время создания
// сериализуются в текст на выходе из хранилища.
type pinRow struct {
	PinID       string         `db:"pin_id"`
	Title       string         `db:"title"`
	ImageURL    string         `db:"image_url"`
	Tags        pq.StringArray `db:"tags"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r pinRow) toModel() models.Pin {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}

	return models.Pin{
		PinID:       r.PinID,
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Tags:        tags,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (r *PinRepositoryImpl) Create(ctx context.Context, pin *models.Pin) error {
	query := `INSERT INTO pins (pin_id, title, image_url, tags, description, created_at) VALUES (:pin_id, :title, :image_url, :tags, :description, :created_at)`

	if pin.PinID == "" {
		pin.PinID = uuid.New().String()
	}

	createdAt := time.Now().UTC()

	row := pinRow{
		PinID:       pin.PinID,
		Title:       pin.Title,
		ImageURL:    pin.ImageURL,
		Tags:        pq.StringArray(pin.Tags),
		Description: pin.Description,
		CreatedAt:   createdAt,
	}
	if row.Tags == nil {
		row.Tags = pq.StringArray{}
	}

	_, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("ошибка при создании пина: %w", err)
	}

	pin.CreatedAt = createdAt.Format(time.RFC3339)

	return nil
}

// GetAll возвращает все пины, новые первыми.
func (r *PinRepositoryImpl) GetAll(ctx context.Context) ([]models.Pin, error) {
	query := `SELECT pin_id, title, image_url, tags, description, created_at FROM pins ORDER BY created_at DESC`

	var rows []pinRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пинов: %w", err)
	}

	pins := make([]models.Pin, 0, len(rows))
	for _, row := range rows {
		pins = append(pins, row.toModel())
	}

	return pins, nil
}

func (r *PinRepositoryImpl) GetByID(ctx context.Context, pinID string) (*models.Pin, error) {
	// неверный UUID не доходит до БД и не поднимается выше как ошибка разбора
	if _, err := uuid.Parse(pinID); err != nil {
		return nil, ErrPinNotFound
	}

	query := `SELECT pin_id, title, image_url, tags, description, created_at FROM pins WHERE pin_id = $1`

	var row pinRow
	err := r.db.GetContext(ctx, &row, query, pinID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPinNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пина: %w", err)
	}

	pin := row.toModel()

	return &pin, nil
}

func (r *PinRepositoryImpl) Delete(ctx context.Context, pinID string) error {
	if _, err := uuid.Parse(pinID); err != nil {
		return ErrPinNotFound
	}

	query := `DELETE FROM pins WHERE pin_id = $1`

	result, err := r.db.ExecContext(ctx, query, pinID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пина: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPinNotFound
	}

	return nil
}
