package main

import (
	"database/sql"
	"log"

	"immoBack/internal/config"
	"immoBack/internal/handlers"
	"immoBack/internal/repositories"
	"immoBack/internal/services"
	"immoBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	propertyHandler *handlers.PropertyHandler
	sessionHandler  *handlers.SessionHandler
	sessionService  *services.SessionService

	hub *RefreshHub
	db  *sql.DB
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	propertyRepo := repositories.PropertyRepository{DB: db}
	sessionRepo := repositories.NewSessionRepository(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	blobStore := &utils.S3Storage{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
	}

	propertyService := &services.PropertyService{
		PropertyRepo: &propertyRepo,
		Blobs:        blobStore,
		ErrorLog:     errorLog,
	}
	sessionService := &services.SessionService{
		Sessions:   sessionRepo,
		Secret:     cfg.Dashboard.Secret,
		SecretHash: cfg.Dashboard.SecretHash,
	}

	app := &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		propertyHandler: &handlers.PropertyHandler{Service: propertyService},
		sessionHandler:  &handlers.SessionHandler{Service: sessionService},
		sessionService:  sessionService,
		db:              db,
	}
	app.propertyHandler.Notify = app.notifyPropertiesUpdated
	return app
}

func (app *application) notifyPropertiesUpdated() {
	if app.hub != nil {
		app.hub.Broadcast("properties_updated")
	}
}
