package services

import (
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
)

// Services holds one service per content table
type Services struct {
	Events    *ContentService[models.Event]
	Resources *UploadService[models.Resource]
	Gallery   *UploadService[models.GalleryImage]
	Team      *ContentService[models.Coordinator]
	ClubInfo  *ContentService[models.ClubInfo]
}

// NewServices wires the content services onto repos and blobs
func NewServices(repos *repositories.Repositories, blobs filestorage.BlobStore, logger zerolog.Logger) *Services {
	return &Services{
		Events:    NewContentService(models.EntityEvent, repos.Events, logger),
		Resources: NewUploadService(repos.Resources, blobs, ResourceBinding, logger),
		Gallery:   NewUploadService(repos.Gallery, blobs, GalleryBinding, logger),
		Team:      NewContentService(models.EntityCoordinator, repos.Coordinators, logger),
		ClubInfo:  NewContentService(models.EntityClubInfo, repos.ClubInfo, logger),
	}
}
