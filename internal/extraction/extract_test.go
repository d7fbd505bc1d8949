package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTypeForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"resume.pdf", TypePDF},
		{"Resume.PDF", TypePDF},
		{"resume.docx", TypeDocx},
		{"resume.html", TypeHTML},
		{"resume.htm", TypeHTML},
		{"resume.txt", TypePlain},
		{"resume.text", TypePlain},
		{"notes.md", TypePlain},
		{"resume.doc", ""},
		{"resume.png", ""},
		{"resume", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeForFile(tt.name), tt.name)
	}
}

func TestText_Plain(t *testing.T) {
	text, err := Text([]byte("SKILLS\nGo, Python"), TypePlain)
	require.NoError(t, err)
	assert.Equal(t, "SKILLS\nGo, Python", text)
}

func TestText_StripsMediaTypeParameters(t *testing.T) {
	text, err := Text([]byte("hello"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestText_HTML(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
<h1>EXPERIENCE</h1>
<p>Engineer 2019 - 2023</p>
<ul><li>Built things</li></ul>
</body></html>`

	text, err := Text([]byte(html), TypeHTML)
	require.NoError(t, err)
	assert.Equal(t, "EXPERIENCE\nEngineer 2019 - 2023\nBuilt things", text)
}

func TestText_HTMLSkipsContainersAndScripts(t *testing.T) {
	html := `<html><body>
<script>var x = "SKILLS";</script>
<div><p>Inside a container</p></div>
</body></html>`

	text, err := Text([]byte(html), TypeHTML)
	require.NoError(t, err)
	assert.Equal(t, "Inside a container", text)
}

func TestText_HTMLFallsBackToBodyText(t *testing.T) {
	text, err := Text([]byte("<html><body>just raw text</body></html>"), TypeHTML)
	require.NoError(t, err)
	assert.Equal(t, "just raw text", text)
}

func TestText_HTMLEmpty(t *testing.T) {
	_, err := Text([]byte(""), TypeHTML)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, TypeHTML, extractionErr.MediaType)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), TypePDF)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, TypePDF, extractionErr.MediaType)
	assert.Error(t, errors.Unwrap(extractionErr))
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), TypeDocx)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, TypeDocx, extractionErr.MediaType)
}

func TestText_UnsupportedType(t *testing.T) {
	_, err := Text([]byte("data"), "image/png")

	var unsupportedErr *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "image/png", unsupportedErr.MediaType)
}

func TestTextOrPlaceholder_Success(t *testing.T) {
	text := TextOrPlaceholder([]byte("resume body"), TypePlain, "resume.txt", zap.NewNop())
	assert.Equal(t, "resume body", text)
}

func TestTextOrPlaceholder_Failure(t *testing.T) {
	text := TextOrPlaceholder([]byte("junk"), TypePDF, "resume.pdf", zap.NewNop())
	assert.Equal(t, "[Text Extraction Failed] File: resume.pdf. Please check file format.", text)
}

func TestTextOrPlaceholder_NilLogger(t *testing.T) {
	text := TextOrPlaceholder([]byte("junk"), "image/png", "photo.png", nil)
	assert.Equal(t, "[Text Extraction Failed] File: photo.png. Please check file format.", text)
}
