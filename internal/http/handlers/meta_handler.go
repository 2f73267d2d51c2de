package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/models"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedChannels = []MetaOption{
	{ID: "whatsapp", Label: "WhatsApp"},
	{ID: "email", Label: "Email"},
	{ID: "inStudio", Label: "In-Studio"},
	{ID: "website", Label: "Website"},
	{ID: "socialMedia", Label: "Social Media"},
	{ID: "metaAds", Label: "Meta Ads"},
}

var predefinedCollateralTypes = []MetaOption{
	{ID: "tentCards", Label: "Tent Cards"},
	{ID: "imageCreative", Label: "Image Creative"},
	{ID: "videoCreative", Label: "Video Creative"},
	{ID: "easelStandee", Label: "Easel Standee"},
	{ID: "emailTemplate", Label: "Email Template"},
	{ID: "landingPage", Label: "Landing Page"},
	{ID: "socialPosts", Label: "Social Posts"},
	{ID: "storyTemplate", Label: "Story Template"},
}

var predefinedOfferTypes = []MetaOption{
	{ID: "membership", Label: models.OfferTypeMembership},
	{ID: "classPack", Label: models.OfferTypeClassPack},
	{ID: "personalTraining", Label: models.OfferTypePersonalTraining},
	{ID: "challenge", Label: models.OfferTypeChallenge},
	{ID: "referral", Label: models.OfferTypeReferral},
	{ID: "retail", Label: models.OfferTypeRetail},
}

func (h *MetaHandler) GetChannels(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedChannels})
}

func (h *MetaHandler) GetCollateralTypes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCollateralTypes})
}

func (h *MetaHandler) GetOfferTypes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedOfferTypes})
}
