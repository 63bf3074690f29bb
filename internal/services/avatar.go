package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// avatarPalette is the fixed background set; a user's color is keyed off
// their id so regeneration stays stable.
var avatarPalette = []color.NRGBA{
	{R: 0x4C, G: 0x6E, B: 0xF5, A: 0xFF},
	{R: 0xF5, G: 0x6E, B: 0x4C, A: 0xFF},
	{R: 0x2E, G: 0xA4, B: 0x6B, A: 0xFF},
	{R: 0x8E, G: 0x44, B: 0xAD, A: 0xFF},
	{R: 0xC0, G: 0x5C, B: 0x2B, A: 0xFF},
	{R: 0x16, G: 0x7D, B: 0x8C, A: 0xFF},
}

type AvatarService interface {
	CreateUserAvatar(ctx context.Context, user types.User) error
	UserAvatarPNG(ctx context.Context, user types.User) ([]byte, error)
}

type avatarService struct {
	log       *logger.Logger
	avatarDir string
	fontFace  font.Face
}

// NewAvatarService loads the TTF named by AVATAR_FONT and prepares the
// avatar directory under dataDir. A missing font is an error; callers that
// want avatars to be optional skip construction when the env var is unset.
func NewAvatarService(log *logger.Logger, dataDir string) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	fontPath := os.Getenv("AVATAR_FONT")
	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("Env var AVATAR_FONT is empty")
	}
	serviceLog.Info("Loading avatar font", "font", fontPath)

	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	avatarDir := filepath.Join(dataDir, "avatars")
	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create avatar dir: %w", err)
	}

	return &avatarService{
		log:       serviceLog,
		avatarDir: avatarDir,
		fontFace:  face,
	}, nil
}

func (as *avatarService) CreateUserAvatar(ctx context.Context, user types.User) error {
	buf, err := as.renderAvatar(user)
	if err != nil {
		return err
	}
	path := as.avatarPath(user.ID)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write avatar: %w", err)
	}
	as.log.Info("Avatar generated", "user_id", user.ID)
	return nil
}

// UserAvatarPNG returns the stored avatar, rendering and caching it on first
// request.
func (as *avatarService) UserAvatarPNG(ctx context.Context, user types.User) ([]byte, error) {
	path := as.avatarPath(user.ID)
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read avatar: %w", err)
	}
	if err := as.CreateUserAvatar(ctx, user); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (as *avatarService) avatarPath(userID int) string {
	return filepath.Join(as.avatarDir, fmt.Sprintf("%d.png", userID))
}

func (as *avatarService) renderAvatar(user types.User) (bytes.Buffer, error) {
	const size = 512
	var buf bytes.Buffer

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(pickAvatarColor(user.ID))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(user.Name)

	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func pickAvatarColor(userID int) color.NRGBA {
	if userID < 0 {
		userID = -userID
	}
	return avatarPalette[userID%len(avatarPalette)]
}

func computeInitials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "??"
	}
	first := strings.ToUpper(fields[0][:1])
	if len(fields) == 1 {
		return first + "?"
	}
	last := fields[len(fields)-1]
	return first + strings.ToUpper(last[:1])
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return face, nil
}
