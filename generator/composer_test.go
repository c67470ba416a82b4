package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDocumentRenders(t *testing.T) {
	cert := twoCoursesCertificate()
	pair := Pair{Trainee: cert.Trainees[0], Association: cert.Courses[0]}

	pdf, err := ComposeDocument(Document{
		Trainee:   cert.Trainees[0],
		View:      ResolveEffective(cert, pair),
		Logo:      testPNG,
		QR:        testPNG,
		Signature: testPNG,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestComposeDocumentWithoutImages(t *testing.T) {
	cert := twoCoursesCertificate()
	pair := Pair{Trainee: cert.Trainees[1], Association: cert.Courses[1]}

	pdf, err := ComposeDocument(Document{
		Trainee: cert.Trainees[1],
		View:    ResolveEffective(cert, pair),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.NotZero(t, buf.Len())
}

func TestImageType(t *testing.T) {
	assert.Equal(t, "PNG", imageType(testPNG))
	assert.Equal(t, "JPG", imageType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.Equal(t, "GIF", imageType([]byte("GIF89a....")))
	assert.Equal(t, "PNG", imageType([]byte{0x00}))
}
