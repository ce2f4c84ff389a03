package helper

import (
	"log"
	"sync"

	"github.com/eagledigitalhouse/eventpro-sub001/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

var (
	cloudinaryClient *cloudinary.Cloudinary
	cloudinaryOnce   sync.Once
)

// InitCloudinary cliente compartilhado para o upload de banners de evento
func InitCloudinary() *cloudinary.Cloudinary {
	cloudinaryOnce.Do(func() {
		var err error
		cloudinaryClient, err = cloudinary.NewFromParams(
			config.Config("CLOUDINARY_CLOUD_NAME"),
			config.Config("CLOUDINARY_API_KEY"),
			config.Config("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Fatalf("Falha ao iniciar o Cloudinary: %v", err)
		}
	})
	return cloudinaryClient
}
