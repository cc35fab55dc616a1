package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront/internal/errs"
	meliMocks "github.com/donaldgifford/storefront/internal/meli/mocks"
	storeMocks "github.com/donaldgifford/storefront/internal/store/mocks"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// pngHeader is the 8-byte PNG signature, base64 "iVBORw0KGgo=".
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestCreatePartner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           PartnerInput
		wantImageURL string
	}{
		{
			name:         "declared image type is kept",
			in:           PartnerInput{Name: " Luthieria Sul ", ContentType: "image/png", Image: pngHeader},
			wantImageURL: "data:image/png;base64,iVBORw0KGgo=",
		},
		{
			name:         "missing type falls back to jpeg",
			in:           PartnerInput{Name: "Luthieria Sul", Image: pngHeader},
			wantImageURL: "data:image/jpeg;base64,iVBORw0KGgo=",
		},
		{
			name:         "octet stream falls back to jpeg",
			in:           PartnerInput{Name: "Luthieria Sul", ContentType: "application/octet-stream", Image: pngHeader},
			wantImageURL: "data:image/jpeg;base64,iVBORw0KGgo=",
		},
		{
			name:         "media type parameters are dropped",
			in:           PartnerInput{Name: "Luthieria Sul", ContentType: "image/svg+xml; charset=utf-8", Image: []byte("<svg/>")},
			wantImageURL: "data:image/svg+xml;base64,PHN2Zy8+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().CreatePartner(mock.Anything, mock.MatchedBy(func(p *domain.Partner) bool {
				return p.Name == "Luthieria Sul" && p.ImageURL == tt.wantImageURL
			})).RunAndReturn(func(_ context.Context, p *domain.Partner) error {
				p.ID = "p1"
				return nil
			}).Once()

			p, err := newTestService(ms, meliMocks.NewMockItemFetcher(t)).CreatePartner(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, "p1", p.ID)
			assert.Equal(t, tt.wantImageURL, p.ImageURL)
		})
	}
}

func TestCreatePartner_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        PartnerInput
		wantField string
	}{
		{
			name:      "blank name",
			in:        PartnerInput{Name: "  ", ContentType: "image/png", Image: pngHeader},
			wantField: "name",
		},
		{
			name:      "missing image",
			in:        PartnerInput{Name: "Luthieria Sul", ContentType: "image/png"},
			wantField: "image",
		},
		{
			name:      "image too large",
			in:        PartnerInput{Name: "Luthieria Sul", ContentType: "image/png", Image: bytes.Repeat([]byte{0}, MaxPartnerImageBytes+1)},
			wantField: "image",
		},
		{
			name:      "not an image",
			in:        PartnerInput{Name: "Luthieria Sul", ContentType: "application/pdf", Image: []byte("%PDF")},
			wantField: "image",
		},
		{
			name:      "malformed content type",
			in:        PartnerInput{Name: "Luthieria Sul", ContentType: "image/png; =", Image: pngHeader},
			wantField: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(storeMocks.NewMockStore(t), meliMocks.NewMockItemFetcher(t))
			_, err := svc.CreatePartner(context.Background(), tt.in)

			var v *errs.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.wantField, v.Field)
		})
	}
}

func TestPartners_ListAndDelete(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().ListPartners(mock.Anything).
			Return([]domain.Partner{{ID: "p1", Name: "Luthieria Sul"}}, nil)

		got, err := newTestService(ms, meliMocks.NewMockItemFetcher(t)).ListPartners(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("list error wrapped", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().ListPartners(mock.Anything).Return(nil, errors.New("boom"))

		_, err := newTestService(ms, meliMocks.NewMockItemFetcher(t)).ListPartners(context.Background())
		require.ErrorContains(t, err, "listing partners")
	})

	t.Run("delete missing", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().DeletePartner(mock.Anything, "gone").Return(errs.ErrNotFound)

		err := newTestService(ms, meliMocks.NewMockItemFetcher(t)).DeletePartner(context.Background(), "gone")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().DeletePartner(mock.Anything, "p1").Return(nil)

		require.NoError(t, newTestService(ms, meliMocks.NewMockItemFetcher(t)).
			DeletePartner(context.Background(), "p1"))
	})
}
