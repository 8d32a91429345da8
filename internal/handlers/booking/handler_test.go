package booking_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"stayledger/infras/otel/mocks"
	bookingMocks "stayledger/internal/domains/booking/mocks"
	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/handlers/booking"
	"stayledger/shared/constant"
	sharedDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const csvText = "booking_id,guest_name,unit\n1,A,G1\n"

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_GetBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().List(gomock.Any(), dto.ListBookingsRequest{
		QueryParams: sharedDto.QueryParams{Page: 2, Limit: 10, SortDir: sharedDto.SortDirDesc},
		Guest:       "kenny",
		Unit:        "G1",
	}).Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}, TotalData: 0}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/bookings/?guest=kenny&unit=G1&page=2&limit=10&sort_dir=desc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"bookings":[],"total_data":0}}`, rec.Body.String())
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(`{"units":[]}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.GetBookingsResponse, error) {
				assert.Equal(t, []string{"G1", "G2"}, req.Units)
				assert.Equal(t, "9500", req.Amount.String())

				return dto.GetBookingsResponse{TotalData: 2}, nil
			})

		body := `{"guest_name":"Kenny","units":["G1","G2"],"check_in":"2025-12-20","check_out":"2025-12-21","amount":9500,"paid":4500}`
		rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestHandler_Import_Bodies(t *testing.T) {
	multipartBody := func() (io.Reader, string) {
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		part, _ := writer.CreateFormFile(constant.FormFile, "export.csv")
		_, _ = part.Write([]byte(csvText))
		_ = writer.Close()

		return buf, writer.FormDataContentType()
	}

	jsonBody := func() (io.Reader, string) {
		data, _ := json.Marshal(dto.ImportRequest{Text: csvText})

		return bytes.NewReader(data), constant.ContentTypeJSON
	}

	rawBody := func() (io.Reader, string) {
		return strings.NewReader(csvText), constant.ContentTypeCSV
	}

	tests := []struct {
		name string
		body func() (io.Reader, string)
	}{
		{name: "multipart file", body: multipartBody},
		{name: "json text", body: jsonBody},
		{name: "raw csv", body: rawBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			svc.EXPECT().Import(gomock.Any(), csvText).
				Return(dto.NewImportResponse(1, 1, nil), nil)

			body, contentType := tt.body()
			request := httptest.NewRequest(http.MethodPost, "/bookings/import", body)
			request.Header.Set(constant.RequestHeaderContentType, contentType)

			rec := serve(router, request)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"added":1`)
		})
	}
}

func TestHandler_Import_EmptyBody(t *testing.T) {
	_, router := setup(t)

	request := httptest.NewRequest(http.MethodPost, "/bookings/import", strings.NewReader("  \n"))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)

	rec := serve(router, request)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), failure.EmptyImport.Message)
}

func TestHandler_Import_OversizedBody(t *testing.T) {
	oversized := csvText + strings.Repeat("x", int(constant.RequestMaxMemory))

	multipartBody := func() (io.Reader, string) {
		buf := &bytes.Buffer{}
		form := multipart.NewWriter(buf)

		part, err := form.CreateFormFile(constant.FormFile, "bookings.csv")
		require.NoError(t, err)

		_, err = part.Write([]byte(oversized))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		return buf, form.FormDataContentType()
	}

	jsonBody := func() (io.Reader, string) {
		body, err := json.Marshal(dto.ImportRequest{Text: oversized})
		require.NoError(t, err)

		return bytes.NewReader(body), constant.ContentTypeJSON
	}

	rawBody := func() (io.Reader, string) {
		return strings.NewReader(oversized), constant.ContentTypeCSV
	}

	tests := []struct {
		name string
		body func() (io.Reader, string)
	}{
		{name: "multipart", body: multipartBody},
		{name: "json", body: jsonBody},
		{name: "raw", body: rawBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no service expectation: the body must be rejected before the import runs
			_, router := setup(t)

			body, contentType := tt.body()
			request := httptest.NewRequest(http.MethodPost, "/bookings/import", body)
			request.Header.Set(constant.RequestHeaderContentType, contentType)

			rec := serve(router, request)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Import_Rejected(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Import(gomock.Any(), gomock.Any()).
		Return(dto.ImportResponse{}, failure.BadRequestFromString("CSV missing required headers: booking_id, guest_name, unit"))

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/import", strings.NewReader("a,b\n1,2")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"CSV missing required headers: booking_id, guest_name, unit"}`, rec.Body.String())
}

func TestHandler_PreviewImport(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Preview(gomock.Any(), csvText).Return(dto.ImportPreviewResponse{Status: "ready"}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/import/preview", strings.NewReader(csvText)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)
}

func TestHandler_GetTemplate(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Template().Return("booking_id,guest_name")

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/bookings/template", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeCSV, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), "bookings_template.csv")
	assert.Equal(t, "booking_id,guest_name\n", rec.Body.String())
}

func TestHandler_Reset(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Reset(gomock.Any()).Return(dto.ResetResponse{Bookings: 9, Units: 3}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/reset", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"bookings":9,"units":3}}`, rec.Body.String())
}

func TestHandler_AddOns(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().AddAddOn(gomock.Any(), "b1", gomock.Any()).Return(model.AddOn{ID: "ao1"}, nil)

		body := `{"category":"Island Hopping","name":"Tour","amount":3500}`
		rec := serve(router, httptest.NewRequest(http.MethodPost, "/bookings/b1/addons", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"ao1"`)
	})

	t.Run("update state of missing booking", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().UpdateAddOnState(gomock.Any(), "b1", "ao1", dto.UpdateAddOnStateRequest{State: model.StateActual}).
			Return(failure.NotFound(model.EntityName))

		rec := serve(router, httptest.NewRequest(http.MethodPatch, "/bookings/b1/addons/ao1", strings.NewReader(`{"status":"Actual"}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update state requires status", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, httptest.NewRequest(http.MethodPatch, "/bookings/b1/addons/ao1", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().RemoveAddOn(gomock.Any(), "b1", "ao1").Return(nil)

		rec := serve(router, httptest.NewRequest(http.MethodDelete, "/bookings/b1/addons/ao1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
