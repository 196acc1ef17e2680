package postgres

import (
	"context"
	"encoding/json"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create appends an audit event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// List retrieves events matching the filter, newest first.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query := repo.db.WithContext(ctx).Order("id DESC")

	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) (*entity.Event, error) {
	var payload map[string]any
	if len(data.Payload) > 0 {
		if err := json.Unmarshal(data.Payload, &payload); err != nil {
			return nil, errors.Wrapf(err, "failed to decode payload of event %d", data.ID)
		}
	}

	return &entity.Event{
		ID:        data.ID,
		Type:      data.Type,
		Name:      data.Name,
		Payload:   payload,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) (*model.EventModel, error) {
	payload := data.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event payload")
	}

	return &model.EventModel{
		ID:        data.ID,
		Type:      data.Type,
		Name:      data.Name,
		Payload:   datatypes.JSON(raw),
		CreatedAt: data.CreatedAt,
	}, nil
}
