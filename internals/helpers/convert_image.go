package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxMenuPhotoBytes = 5 << 20 // 5MB sebelum rekompresi
	menuPhotoMaxW     = 1280
	menuPhotoMaxH     = 1280
	menuPhotoQuality  = 80
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveMenuPhotoAsWebP menerima upload foto menu (jpeg/png/webp),
// rekompresi ke webp, simpan di UPLOAD_DIR, dan kembalikan URL publiknya.
func SaveMenuPhotoAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(src, maxMenuPhotoBytes+1)); err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}
	if buf.Len() > maxMenuPhotoBytes {
		return "", fmt.Errorf("ukuran gambar melebihi %dMB", maxMenuPhotoBytes>>20)
	}

	img, err := decodeImage(buf.Bytes(), fileHeader.Filename)
	if err != nil {
		return "", err
	}

	// downscale keep-aspect, lalu encode webp lossy
	img = imaging.Fit(img, menuPhotoMaxW, menuPhotoMaxH, imaging.CatmullRom)
	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: menuPhotoQuality}); err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	dir := filepath.Join(uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	filename := generateUniqueFilename(fileHeader.Filename)
	if err := os.WriteFile(filepath.Join(dir, filename), out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	return fmt.Sprintf("%s/uploads/%s/%s", base, folder, filename), nil
}

// decodeImage sniff MIME dulu, fallback ke ekstensi.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
}

func generateUniqueFilename(original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = unsafeFilenameRe.ReplaceAllString(base, "-")
	if base == "" {
		base = "menu"
	}
	return fmt.Sprintf("%s-%d-%s.webp", base, time.Now().Unix(), uuid.NewString()[:8])
}
