package structs

import "github.com/google/uuid"

type CreateStoreRequest struct {
	BrandName      string `json:"brand_name" validate:"required,min=2,max=100"`
	Bio            string `json:"bio" validate:"omitempty,max=100"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,min=8,max=20"`
	ContactChannel string `json:"contact_channel" validate:"omitempty,oneof=whatsapp telegram facebook"`
	LogoData       string `json:"logo_data" validate:"omitempty,base64"`
	LogoURL        string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateStoreRequest struct {
	BrandName      *string `json:"brand_name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=100"`
	WhatsappNumber *string `json:"whatsapp_number,omitempty" validate:"omitempty,min=8,max=20"`
	ContactChannel *string `json:"contact_channel,omitempty" validate:"omitempty,oneof=whatsapp telegram facebook"`
	LogoData       string  `json:"logo_data,omitempty" validate:"omitempty,base64"`
	LogoURL        string  `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Price       string `json:"price" validate:"omitempty,max=32"`
	Currency    string `json:"currency" validate:"omitempty,len=3,alpha"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageData   string `json:"image_data" validate:"omitempty,base64"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Price       *string `json:"price,omitempty" validate:"omitempty,max=32"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageData   string  `json:"image_data,omitempty" validate:"omitempty,base64"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type AttachMediaRequest struct {
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	FileURL     string     `json:"file_url" validate:"omitempty,url"`
	ExternalURL string     `json:"external_url" validate:"omitempty,url"`
	YoutubeURL  string     `json:"youtube_url" validate:"omitempty,url"`
	Label       string     `json:"label" validate:"omitempty,max=100"`
}

type CreateCommentRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=1,max=100"`
	Body       string `json:"body" validate:"required,min=1,max=1000"`
}

type CreateReportRequest struct {
	StoreSlug     string     `json:"store_slug" validate:"required"`
	ItemID        *uuid.UUID `json:"item_id,omitempty"`
	ReporterEmail string     `json:"reporter_email" validate:"required,email"`
	Reason        string     `json:"reason" validate:"required,oneof=spam scam counterfeit offensive other"`
	Detail        string     `json:"detail" validate:"omitempty,max=2000"`
}
