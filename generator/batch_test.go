package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiny valid 1x1 PNG, enough for gofpdf to embed
var testPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func batchCertificate() Certificate {
	cert := twoCoursesCertificate()
	cert.SignatureType = SignatureDigital
	cert.SignatureFileID = "sig1"
	return cert
}

func TestGenerateBatchTwoByTwo(t *testing.T) {
	fetcher := &countingFetcher{data: testPNG}

	archive, err := GenerateBatch(context.Background(), batchCertificate(), fetcher, Options{
		BaseURL:     "https://constancias.example.com",
		ArchiveName: "constancias_enero",
	})
	require.NoError(t, err)
	assert.Equal(t, "constancias_enero.zip", archive.FileName)
	assert.Equal(t, "application/zip", archive.ContentType)
	assert.Equal(t, 1, fetcher.calls, "one signature download for the whole batch")

	zr, err := zip.NewReader(bytes.NewReader(archive.Data), int64(len(archive.Data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.NotZero(t, f.UncompressedSize64)
	}
	assert.ElementsMatch(t, []string{
		"Juan_Perez_Trabajos_en_altura_PEPJ800101HDFRRN09.pdf",
		"Juan_Perez_Primeros_auxilios_PEPJ800101HDFRRN09.pdf",
		"Ana_Gomez_Trabajos_en_altura_GOMA900202MDFRRN08.pdf",
		"Ana_Gomez_Primeros_auxilios_GOMA900202MDFRRN08.pdf",
	}, names)
}

func TestGenerateBatchSinglePairIsBarePDF(t *testing.T) {
	cert := batchCertificate()
	cert.Trainees = cert.Trainees[:1]
	cert.Courses = nil
	cert.CourseName = "Curso único"

	archive, err := GenerateBatch(context.Background(), cert, &countingFetcher{data: testPNG}, Options{
		BaseURL: "https://constancias.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", archive.ContentType)
	assert.Equal(t, "Juan_Perez_Curso_unico_PEPJ800101HDFRRN09.pdf", archive.FileName)
	assert.True(t, bytes.HasPrefix(archive.Data, []byte("%PDF")))
}

func TestGenerateBatchSignatureFailureDoesNotAbort(t *testing.T) {
	fetcher := &countingFetcher{err: assert.AnError}

	archive, err := GenerateBatch(context.Background(), batchCertificate(), fetcher, Options{
		BaseURL: "https://constancias.example.com",
	})
	require.NoError(t, err, "documents render with a blank signature instead")
	assert.Equal(t, "application/zip", archive.ContentType)
	assert.Equal(t, 1, fetcher.calls, "the failure is cached, not retried per document")
}

func TestGenerateBatchNoTrainees(t *testing.T) {
	cert := batchCertificate()
	cert.Trainees = nil

	_, err := GenerateBatch(context.Background(), cert, &countingFetcher{}, Options{})
	assert.Error(t, err)
}

func TestGenerateBatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateBatch(ctx, batchCertificate(), &countingFetcher{data: testPNG}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildValidationURL(t *testing.T) {
	url := BuildValidationURL("https://constancias.example.com/", 42, " ABC123 ", 7)
	assert.Equal(t, "https://constancias.example.com/#/validar/42/ABC123?course_id=7", url)

	url = BuildValidationURL("https://constancias.example.com", 42, "ABC123", 0)
	assert.Equal(t, "https://constancias.example.com/#/validar/42/ABC123", url)
}

func TestResolveBaseURL(t *testing.T) {
	assert.Equal(t, "https://front.example.com", ResolveBaseURL("https://front.example.com/", "ignored", "https"))
	assert.Equal(t, "http://localhost:3000", ResolveBaseURL("", "localhost:3000", "https"))
	assert.Equal(t, "http://127.0.0.1:8080", ResolveBaseURL("", "127.0.0.1:8080", ""))
	assert.Equal(t, "https://app.example.com", ResolveBaseURL("", "app.example.com", "https"))
	assert.Equal(t, "https://app.example.com", ResolveBaseURL("", "app.example.com", ""))
}

func TestDocumentNameFallbacks(t *testing.T) {
	name := documentName(
		Trainee{FullName: "¿?", CURP: "XYZ987"},
		EffectiveView{CourseName: "***"},
		1,
	)
	assert.Equal(t, "constancia_curso_2_XYZ987.pdf", name)
}
