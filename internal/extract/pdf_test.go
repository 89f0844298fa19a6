package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRejectsNonPDFInput(t *testing.T) {
	data := []byte("this is not a pdf document")
	_, err := PDF{}.Text(bytes.NewReader(data), int64(len(data)))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Err)
}

func TestTextRejectsTruncatedPDF(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\n<<")
	_, err := PDF{}.Text(bytes.NewReader(data), int64(len(data)))

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
