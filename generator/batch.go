package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrPixelSize = 256

// Options configure one batch generation run.
type Options struct {
	// BaseURL is the public frontend origin the QR validation links point
	// at. See ResolveBaseURL.
	BaseURL string
	// ArchiveName names the zip artifact; ".zip" is appended when missing.
	ArchiveName string
	// Logo is resolved once by the caller and shared across the batch.
	Logo []byte
}

// Archive is the finished artifact: a zip holding one PDF per (trainee,
// course) pair, or the bare PDF when exactly one pair exists.
type Archive struct {
	FileName    string
	ContentType string
	Data        []byte
}

type renderedDocument struct {
	name string
	data []byte
}

// GenerateBatch walks the roster in order, resolves each trainee's course
// pairs, and renders one DC-3 PDF per pair. Signature fetch failures
// degrade to a blank signature for that document only; any compose or
// render failure aborts the whole batch, since a partially filled archive
// is worse than a clear retryable error. Work is strictly sequential to
// bound memory and avoid hammering the signature proxy.
func GenerateBatch(ctx context.Context, cert Certificate, fetcher ImageFetcher, opts Options) (*Archive, error) {
	if len(cert.Trainees) == 0 {
		return nil, fmt.Errorf("certificate %d has no trainees to render", cert.ID)
	}

	cache := NewSignatureCache(fetcher)
	var rendered []renderedDocument

	for _, trainee := range cert.Trainees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for i, pair := range PairsForTrainee(cert, trainee) {
			view := ResolveEffective(cert, pair)

			var signature []byte
			if view.SignatureType == SignatureDigital {
				signature = cache.GetOrFetch(ctx, cert.SignatureFileID)
			}

			qrURL := BuildValidationURL(opts.BaseURL, cert.ID, trainee.CURP, view.CourseID)
			qr, err := qrcode.Encode(qrURL, qrcode.Medium, qrPixelSize)
			if err != nil {
				return nil, fmt.Errorf("encode QR for %s: %w", trainee.CURP, err)
			}

			pdf, err := ComposeDocument(Document{
				Trainee:   trainee,
				View:      view,
				Logo:      opts.Logo,
				QR:        qr,
				Signature: signature,
			})
			if err != nil {
				return nil, fmt.Errorf("compose document for %s: %w", trainee.CURP, err)
			}

			var buf bytes.Buffer
			if err := pdf.Output(&buf); err != nil {
				return nil, fmt.Errorf("render PDF for %s: %w", trainee.CURP, err)
			}

			rendered = append(rendered, renderedDocument{
				name: documentName(trainee, view, i),
				data: buf.Bytes(),
			})
		}
	}

	if len(rendered) == 1 {
		return &Archive{
			FileName:    rendered[0].name,
			ContentType: "application/pdf",
			Data:        rendered[0].data,
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, doc := range rendered {
		w, err := zw.Create(doc.name)
		if err != nil {
			return nil, fmt.Errorf("add %s to archive: %w", doc.name, err)
		}
		if _, err := w.Write(doc.data); err != nil {
			return nil, fmt.Errorf("write %s to archive: %w", doc.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	name := strings.TrimSpace(opts.ArchiveName)
	if name == "" {
		name = "constancias"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".zip") {
		name += ".zip"
	}

	return &Archive{
		FileName:    name,
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

// documentName builds the deterministic per-document file name:
// sanitized trainee, sanitized course, raw CURP. Empty sanitizations fall
// back to fixed tokens so the name never collapses.
func documentName(trainee Trainee, view EffectiveView, pairIndex int) string {
	traineeToken := SanitizeFilename(trainee.FullName)
	if traineeToken == "" {
		traineeToken = "constancia"
	}
	courseToken := SanitizeFilename(view.CourseName)
	if courseToken == "" {
		courseToken = fmt.Sprintf("curso_%d", pairIndex+1)
	}
	return fmt.Sprintf("%s_%s_%s.pdf", traineeToken, courseToken, strings.TrimSpace(trainee.CURP))
}

// BuildValidationURL produces the link the QR encodes. The "#" segment
// matches the frontend's hash-based router.
func BuildValidationURL(base string, certificateID uint, curp string, courseID uint) string {
	u := fmt.Sprintf("%s/#/validar/%d/%s",
		strings.TrimRight(base, "/"),
		certificateID,
		url.PathEscape(strings.TrimSpace(curp)),
	)
	if courseID != 0 {
		u += "?course_id=" + strconv.FormatUint(uint64(courseID), 10)
	}
	return u
}

// ResolveBaseURL picks the QR link origin: the configured frontend URL
// wins; against localhost a plain http URL avoids TLS trouble in local
// development; otherwise the serving origin is used as-is.
func ResolveBaseURL(configured, host, protocol string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		return "http://" + host
	}
	if protocol == "" {
		protocol = "https"
	}
	return protocol + "://" + host
}
