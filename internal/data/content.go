package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type contentRepo struct {
	data *Data
	log  *log.Helper
}

// NewContentRepo creates a new content metadata repository
func NewContentRepo(data *Data, logger log.Logger) biz.ContentRepo {
	return &contentRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/content")),
	}
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*biz.ContentMetadata, error) {
	var m ContentMetadata
	err := r.data.db.WithContext(ctx).Where("content_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "get_content").Inc()
		return nil, fmt.Errorf("failed to query content metadata: %w", err)
	}
	return contentToBiz(&m), nil
}

func (r *contentRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := r.data.db.WithContext(ctx).Model(&ContentMetadata{}).Pluck("content_id", &ids).Error; err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "list_content_ids").Inc()
		return nil, fmt.Errorf("failed to list content ids: %w", err)
	}
	return ids, nil
}

func (r *contentRepo) ListCast(ctx context.Context, id string) ([]*biz.CastMember, error) {
	var rows []struct {
		CharacterName string
		PersonID      string
		PersonName    string
		Role          string
	}

	err := r.data.db.WithContext(ctx).Raw(`
		SELECT cc.character_name, cc.person_id, c.name AS person_name, c.role
		FROM content_cast_crew AS cc
		JOIN cast_crew AS c ON cc.person_id = c.person_id
		WHERE cc.content_id = ?`, id).Scan(&rows).Error
	if err != nil {
		metrics.StoreErrors.WithLabelValues("postgres", "list_cast").Inc()
		return nil, fmt.Errorf("failed to list cast: %w", err)
	}

	cast := make([]*biz.CastMember, 0, len(rows))
	for _, row := range rows {
		cast = append(cast, &biz.CastMember{
			CharacterName: row.CharacterName,
			PersonID:      row.PersonID,
			PersonName:    row.PersonName,
			Role:          row.Role,
		})
	}
	return cast, nil
}

// Helper: Convert data.ContentMetadata to biz.ContentMetadata
func contentToBiz(m *ContentMetadata) *biz.ContentMetadata {
	return &biz.ContentMetadata{
		ContentID:     m.ContentID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		ReleaseDate:   m.ReleaseDate,
		ContentType:   biz.ContentType(m.ContentType),
		Summary:       m.Summary,
		Rating:        m.Rating,
	}
}
