package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// MediaService handles image hosting uploads and media attachments on
// stores and items.
type MediaService struct {
	logger     *gecho.Logger
	cfg        *structs.Config
	db         *database.DB
	httpClient *http.Client
}

func NewMediaService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *MediaService {
	return &MediaService{
		logger: logger,
		cfg:    cfg,
		db:     db,
		httpClient: &http.Client{
			Timeout: cfg.Media.UploadTimeout,
		},
	}
}

type imageHostResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// UploadImage pushes a base64-encoded image to the external image host and
// returns the hosted URL.
func (ms *MediaService) UploadImage(ctx context.Context, imageData string) (string, error) {
	if int64(len(imageData)) > ms.cfg.Media.MaxUploadBytes {
		return "", fmt.Errorf("image exceeds maximum upload size")
	}

	form := url.Values{}
	form.Set("key", ms.cfg.Media.ImageHostAPIKey)
	form.Set("image", imageData)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ms.cfg.Media.ImageHostURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ms.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var hostResp imageHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&hostResp); err != nil {
		return "", fmt.Errorf("failed to decode image host response: %w", err)
	}

	if !hostResp.Success || hostResp.Data.URL == "" {
		return "", fmt.Errorf("image host rejected the upload")
	}

	return hostResp.Data.URL, nil
}

// ResolveImage returns a hosted URL for the request's image. Uploads take
// priority; when the upload fails but a direct URL was also provided, the
// URL is used instead so a flaky image host never blocks a save.
func (ms *MediaService) ResolveImage(ctx context.Context, imageData, imageURL string) string {
	if imageData != "" {
		hosted, err := ms.UploadImage(ctx, imageData)
		if err == nil {
			return hosted
		}
		ms.logger.Warn("Image upload failed, falling back to provided URL", gecho.Field("error", err))
	}
	return imageURL
}

// AttachMedia classifies the request into a media variant and stores it.
// YouTube links are recognized by their video id; other URLs become
// external references; hosted file URLs are kept as-is. Attachments aimed
// at an item are only accepted for the caller's own listings.
func (ms *MediaService) AttachMedia(ctx context.Context, storeID uuid.UUID, req *structs.AttachMediaRequest) (*tables.Media, error) {
	if req.ItemID != nil {
		item, err := database.FindByID[tables.Item](ms.db, ctx, *req.ItemID)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if err := checkMediaTarget(item, storeID); err != nil {
			return nil, err
		}
	}

	media, err := buildMedia(storeID, req)
	if err != nil {
		return nil, err
	}

	media, err = database.Query[tables.Media](ms.db).Insert(ctx, media)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ms.logger.Debug("Media attached",
		gecho.Field("store_id", storeID),
		gecho.Field("kind", string(media.Kind)),
	)

	return media, nil
}

// checkMediaTarget rejects attachments aimed at another store's listing.
// A missing item and a foreign item look the same to the caller.
func checkMediaTarget(item *tables.Item, storeID uuid.UUID) error {
	if item == nil || item.StoreId != storeID {
		return lib.ErrNotFound
	}
	return nil
}

// buildMedia turns an attach request into an unsaved media row
func buildMedia(storeID uuid.UUID, req *structs.AttachMediaRequest) (*tables.Media, error) {
	media := &tables.Media{
		StoreId: storeID,
		ItemId:  req.ItemID,
		Label:   req.Label,
	}

	switch {
	case req.YoutubeURL != "":
		videoID := lib.ExtractYoutubeID(req.YoutubeURL)
		if videoID == "" {
			return nil, lib.ErrInvalidMedia
		}
		media.Kind = tables.MediaYoutube
		media.YoutubeId = videoID
		media.YoutubeURL = req.YoutubeURL

	case req.FileURL != "":
		media.Kind = tables.MediaFile
		media.FileURL = req.FileURL

	case req.ExternalURL != "":
		media.Kind = tables.MediaExternalURL
		media.ExternalURL = req.ExternalURL

	default:
		return nil, lib.ErrInvalidMedia
	}

	return media, nil
}

// ListItemMedia returns an item's media ordered by position
func (ms *MediaService) ListItemMedia(ctx context.Context, itemID uuid.UUID) ([]tables.Media, error) {
	media, err := database.Query[tables.Media](ms.db).
		Where("item_id", itemID).
		OrderBy("position", "ASC").
		OrderBy("created_at", "ASC").
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return media, nil
}

// ListMediaForItems batch-loads media for a set of items in one query,
// keyed by item id. Positions are preserved within each item's slice.
func (ms *MediaService) ListMediaForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]tables.Media, error) {
	grouped := make(map[uuid.UUID][]tables.Media, len(itemIDs))
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	media, err := database.Query[tables.Media](ms.db).
		WhereIn("item_id", itemIDs).
		OrderBy("position", "ASC").
		OrderBy("created_at", "ASC").
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	for _, m := range media {
		if m.ItemId == nil {
			continue
		}
		grouped[*m.ItemId] = append(grouped[*m.ItemId], m)
	}
	return grouped, nil
}

// ListStoreGallery returns media attached directly to the store
func (ms *MediaService) ListStoreGallery(ctx context.Context, storeID uuid.UUID) ([]tables.Media, error) {
	media, err := database.Query[tables.Media](ms.db).
		Where("store_id", storeID).
		WhereNull("item_id").
		OrderBy("position", "ASC").
		OrderBy("created_at", "ASC").
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return media, nil
}

// DeleteMedia removes a media row, scoped to the owning store
func (ms *MediaService) DeleteMedia(ctx context.Context, storeID, mediaID uuid.UUID) error {
	affected, err := database.Query[tables.Media](ms.db).
		Where("id", mediaID).
		Where("store_id", storeID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
