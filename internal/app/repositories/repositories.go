package repositories

import (
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/db"
	"github.com/setnu/clubportal/internal/pkg/memstore"
)

// Repositories holds all the repository instances
type Repositories struct {
	Events       Table[models.Event]
	Resources    Table[models.Resource]
	Gallery      Table[models.GalleryImage]
	Coordinators Table[models.Coordinator]
	ClubInfo     Table[models.ClubInfo]
	Users        UserStore
}

// NewRepositories initializes the Postgres-backed repositories
func NewRepositories(pg *db.PostgresDB) *Repositories {
	return &Repositories{
		Events:       newPostgresTable[models.Event](pg.Pool, eventSchema),
		Resources:    newPostgresTable[models.Resource](pg.Pool, resourceSchema),
		Gallery:      newPostgresTable[models.GalleryImage](pg.Pool, gallerySchema),
		Coordinators: newPostgresTable[models.Coordinator](pg.Pool, coordinatorSchema),
		ClubInfo:     newPostgresTable[models.ClubInfo](pg.Pool, clubInfoSchema),
		Users:        NewUserRepository(pg),
	}
}

// NewMemoryRepositories initializes in-process repositories with the same ordering rules
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Events:       memstore.NewTable[models.Event](models.EventLess),
		Resources:    memstore.NewTable[models.Resource](models.ResourceLess),
		Gallery:      memstore.NewTable[models.GalleryImage](models.GalleryLess),
		Coordinators: memstore.NewTable[models.Coordinator](models.CoordinatorLess),
		ClubInfo:     memstore.NewTable[models.ClubInfo](models.ClubInfoLess),
		Users:        NewMemoryUserStore(),
	}
}
