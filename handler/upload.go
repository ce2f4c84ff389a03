package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/eagledigitalhouse/eventpro-sub001/constants"
	"github.com/eagledigitalhouse/eventpro-sub001/database"
	"github.com/eagledigitalhouse/eventpro-sub001/helper"
	"github.com/eagledigitalhouse/eventpro-sub001/model"
	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature assina parâmetros para upload direto do cliente ao Cloudinary
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// valores crus, sem URL encoding, na ordem alfabética das chaves
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k + "=" + paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	hash := sha1.Sum([]byte(stringToSign.String()))
	signature := hex.EncodeToString(hash[:])

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadEventBanner upload server-side do banner do evento
func UploadEventBanner(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("banner")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Arquivo 'banner' não enviado", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	resp, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder:   "eventpro/banners",
		PublicID: fmt.Sprintf("event_%d", event.ID),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Falha no upload do banner", err)
	}

	event.BannerUrl = resp.SecureURL
	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bannerUrl": event.BannerUrl,
	})
}
