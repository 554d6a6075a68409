package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/models"
)

// Table is the gateway to one content table. Implementations assign ids and
// timestamps on write and return List results in the entity's fixed order.
type Table[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// row is the pointer method set the Postgres table needs from an entity.
type row[T any] interface {
	*T
	models.Record
	Meta() *models.Base
}

// schema describes how one entity maps onto its table.
type schema[T any] struct {
	table   string
	columns []string
	orderBy []string
	// fields returns scan targets aligned with columns.
	fields func(rec *T) []interface{}
	// values returns the writable columns of rec.
	values func(rec *T) map[string]interface{}
}

var eventSchema = schema[models.Event]{
	table: models.TableEvents,
	columns: []string{
		"title", "description", "event_date", "location", "registration_link",
		"registration_open_date", "registration_close_date", "created_by",
	},
	orderBy: []string{"event_date ASC", "created_at ASC", "id ASC"},
	fields: func(e *models.Event) []interface{} {
		return []interface{}{
			&e.Title, &e.Description, &e.EventDate, &e.Location, &e.RegistrationLink,
			&e.RegistrationOpenDate, &e.RegistrationCloseDate, &e.CreatedBy,
		}
	},
	values: func(e *models.Event) map[string]interface{} {
		return map[string]interface{}{
			"title":                   e.Title,
			"description":             e.Description,
			"event_date":              e.EventDate,
			"location":                e.Location,
			"registration_link":       e.RegistrationLink,
			"registration_open_date":  e.RegistrationOpenDate,
			"registration_close_date": e.RegistrationCloseDate,
			"created_by":              e.CreatedBy,
		}
	},
}

var resourceSchema = schema[models.Resource]{
	table:   models.TableFiles,
	columns: []string{"title", "description", "file_type", "file_url", "uploaded_by"},
	orderBy: []string{"created_at DESC", "id ASC"},
	fields: func(r *models.Resource) []interface{} {
		return []interface{}{&r.Title, &r.Description, &r.FileType, &r.FileURL, &r.UploadedBy}
	},
	values: func(r *models.Resource) map[string]interface{} {
		return map[string]interface{}{
			"title":       r.Title,
			"description": r.Description,
			"file_type":   r.FileType,
			"file_url":    r.FileURL,
			"uploaded_by": r.UploadedBy,
		}
	},
}

var gallerySchema = schema[models.GalleryImage]{
	table:   models.TableGallery,
	columns: []string{"title", "description", "image_url", "uploaded_by"},
	orderBy: []string{"created_at DESC", "id ASC"},
	fields: func(g *models.GalleryImage) []interface{} {
		return []interface{}{&g.Title, &g.Description, &g.ImageURL, &g.UploadedBy}
	},
	values: func(g *models.GalleryImage) map[string]interface{} {
		return map[string]interface{}{
			"title":       g.Title,
			"description": g.Description,
			"image_url":   g.ImageURL,
			"uploaded_by": g.UploadedBy,
		}
	},
}

var coordinatorSchema = schema[models.Coordinator]{
	table:   models.TableCoordinators,
	columns: []string{"name", "role", "contact", "photo_url", "user_id"},
	orderBy: []string{"created_at ASC", "id ASC"},
	fields: func(c *models.Coordinator) []interface{} {
		return []interface{}{&c.Name, &c.Role, &c.Contact, &c.PhotoURL, &c.UserID}
	},
	values: func(c *models.Coordinator) map[string]interface{} {
		return map[string]interface{}{
			"name":      c.Name,
			"role":      c.Role,
			"contact":   c.Contact,
			"photo_url": c.PhotoURL,
			"user_id":   c.UserID,
		}
	},
}

var clubInfoSchema = schema[models.ClubInfo]{
	table:   models.TableClubInfo,
	columns: []string{"section", "title", "description", "created_by"},
	orderBy: []string{"section ASC", "created_at ASC", "id ASC"},
	fields: func(c *models.ClubInfo) []interface{} {
		return []interface{}{&c.Section, &c.Title, &c.Description, &c.CreatedBy}
	},
	values: func(c *models.ClubInfo) map[string]interface{} {
		return map[string]interface{}{
			"section":     c.Section,
			"title":       c.Title,
			"description": c.Description,
			"created_by":  c.CreatedBy,
		}
	},
}
