package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/owiro17/smarttrimz/internal/httperr"
)

const (
	maxAvatarEdge = 512
	webpQuality   = 80
)

// EncodeAvatarWebP decodes a JPEG or PNG upload, scales it down to at
// most 512px on the long edge and re-encodes it as lossy WebP.
func EncodeAvatarWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("unsupported_image")
	}

	dst := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxAvatarEdge && h <= maxAvatarEdge {
		return src
	}

	if w >= h {
		h = h * maxAvatarEdge / w
		w = maxAvatarEdge
	} else {
		w = w * maxAvatarEdge / h
		h = maxAvatarEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
