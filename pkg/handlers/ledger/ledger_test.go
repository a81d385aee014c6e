package ledger_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/ledger"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/chris/marketplace-ledger/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListLedgerEntries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := mocks.NewLedgerStore(t)
		expectedEntries := []models.LedgerEntry{
			{EntryID: uuid.New().String(), Kind: models.SALE, Credit: 10, Timestamp: time.Now()},
			{EntryID: uuid.New().String(), Kind: models.REFUND, Debit: 2, Timestamp: time.Now().Add(-1 * time.Minute)},
		}
		mockStorage.On("ListLedgerEntries", 20).Return(expectedEntries, nil)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger/entries", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListLedgerEntries(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returnedEntries []api.LedgerEntry
		json.Unmarshal(rr.Body.Bytes(), &returnedEntries)
		assert.Len(t, returnedEntries, 2)
		assert.Equal(t, expectedEntries[0].EntryID, returnedEntries[0].EntryId)
		assert.Nil(t, returnedEntries[0].Debit)
		assert.Equal(t, uint64(2), *returnedEntries[1].Debit)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		mockStorage.On("ListLedgerEntries", mock.Anything).Return(nil, assert.AnError)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger/entries", nil)
		rr := httptest.NewRecorder()

		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Terminated", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		mockStorage.On("ListLedgerEntries", mock.Anything).Return(nil, storage.ErrTerminated)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger/entries", nil)
		rr := httptest.NewRecorder()

		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusGone, rr.Code)
	})

	t.Run("With Limit", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		expectedEntries := []models.LedgerEntry{{EntryID: uuid.New().String()}}
		mockStorage.On("ListLedgerEntries", 10).Return(expectedEntries, nil)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger/entries?limit=10", nil)
		rr := httptest.NewRecorder()

		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		h := ledger.NewLedgerHandler(mockStorage)

		for _, limit := range []string{"-1", "ten"} {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/ledger/entries?limit=%s", limit), nil)
			rr := httptest.NewRecorder()

			h.ListLedgerEntries(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		}
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		mockStorage.On("GetBalance").Return(uint64(42), nil)
		mockStorage.On("GetTotalStorefrontsCount").Return(3, nil)
		mockStorage.On("Owner").Return(models.Identity("owner"))
		mockStorage.On("Paused").Return(true)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()

		h.GetSummary(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var summary api.LedgerSummary
		json.Unmarshal(rr.Body.Bytes(), &summary)
		assert.Equal(t, api.LedgerSummary{Owner: "owner", Paused: true, Balance: 42, TotalStorefrontsCount: 3}, summary)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := mocks.NewLedgerStore(t)
		mockStorage.On("GetBalance").Return(uint64(0), storage.ErrTerminated)

		h := ledger.NewLedgerHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()

		h.GetSummary(rr, req)

		assert.Equal(t, http.StatusGone, rr.Code)
	})
}

func TestListArchivedEntries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		archive := mocks.NewArchiveReader(t)
		archive.On("ListLedgerEntries", mock.Anything, int32(20)).Return([]models.LedgerEntry{{EntryID: "e-1"}}, nil).Once()

		h := ledger.NewArchiveHandler(archive)

		req := httptest.NewRequest(http.MethodGet, "/ledger/archive", nil)
		rr := httptest.NewRecorder()

		h.ListArchivedEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returnedEntries []api.LedgerEntry
		json.Unmarshal(rr.Body.Bytes(), &returnedEntries)
		assert.Len(t, returnedEntries, 1)
	})

	t.Run("By Storefront", func(t *testing.T) {
		sfID := uuid.New()
		archive := mocks.NewArchiveReader(t)
		archive.On("ListStorefrontEntries", mock.Anything, sfID, int32(5)).Return([]models.LedgerEntry{}, nil).Once()

		h := ledger.NewArchiveHandler(archive)

		req := httptest.NewRequest(http.MethodGet, "/ledger/archive?limit=5&storefront="+sfID.String(), nil)
		rr := httptest.NewRecorder()

		h.ListArchivedEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Storage Error", func(t *testing.T) {
		archive := mocks.NewArchiveReader(t)
		archive.On("ListLedgerEntries", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		h := ledger.NewArchiveHandler(archive)

		req := httptest.NewRequest(http.MethodGet, "/ledger/archive", nil)
		rr := httptest.NewRecorder()

		h.ListArchivedEntries(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Invalid Params", func(t *testing.T) {
		h := ledger.NewArchiveHandler(mocks.NewArchiveReader(t))

		for _, query := range []string{"?limit=0", "?limit=x", "?storefront=nope"} {
			req := httptest.NewRequest(http.MethodGet, "/ledger/archive"+query, nil)
			rr := httptest.NewRecorder()

			h.ListArchivedEntries(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, query)
		}
	})
}
