package donation_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanjaygurung/wildfolio/internal/donation"
)

type mockDonationService struct {
	submitResult *donation.Donation
	submitErr    error
	submittedDTO *donation.SubmitDonationDTO
	updateResult *donation.Donation
	updateErr    error
	donors       []*donation.Donor
	detail       *donation.DonorDetail
	detailErr    error
	stats        *donation.Stats
	statsErr     error
}

func (m *mockDonationService) SubmitDonation(dto donation.SubmitDonationDTO) (*donation.Donation, error) {
	m.submittedDTO = &dto
	return m.submitResult, m.submitErr
}

func (m *mockDonationService) UpdateDonationStatus(id int64, dto donation.UpdateDonationStatusDTO) (*donation.Donation, error) {
	return m.updateResult, m.updateErr
}

func (m *mockDonationService) ListDonors(q donation.ListQuery) ([]*donation.Donor, error) {
	return m.donors, nil
}

func (m *mockDonationService) GetDonorDetail(id int64) (*donation.DonorDetail, error) {
	return m.detail, m.detailErr
}

func (m *mockDonationService) ListDonations(q donation.ListQuery) ([]*donation.DonationWithDonor, error) {
	return nil, nil
}

func (m *mockDonationService) GetStats() (*donation.Stats, error) {
	return m.stats, m.statsErr
}

var _ = Describe("Donation Handler", func() {
	var (
		mockService *mockDonationService
		handler     *donation.Handler
		router      *chi.Mux
	)

	BeforeEach(func() {
		mockService = &mockDonationService{}
		handler = donation.NewHandler(mockService)

		router = chi.NewRouter()
		router.Post("/donations", handler.SubmitDonation)
		router.Patch("/donations/{id}/status", handler.UpdateStatus)
		router.Get("/donors", handler.ListDonors)
		router.Get("/donors/{id}", handler.GetDonor)
		router.Get("/donation-stats", handler.GetStats)
	})

	Describe("SubmitDonation", func() {
		It("returns 201 with the recorded donation", func() {
			mockService.submitResult = &donation.Donation{
				ID:            1,
				DonorID:       7,
				Amount:        5000,
				Currency:      "USD",
				PaymentMethod: "eSewa",
				Status:        donation.StatusPending,
				DonationDate:  time.Now(),
			}

			body, _ := json.Marshal(map[string]interface{}{
				"donor_name":     "Alice",
				"amount":         5000,
				"payment_method": "eSewa",
			})
			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp struct {
				Success bool              `json:"success"`
				Data    donation.Donation `json:"data"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Data.ID).To(Equal(int64(1)))
			Expect(resp.Data.Amount).To(Equal(int64(5000)))

			Expect(mockService.submittedDTO).NotTo(BeNil())
			Expect(mockService.submittedDTO.DonorName).To(Equal("Alice"))
		})

		It("returns 400 on a validation failure before touching the service", func() {
			body, _ := json.Marshal(map[string]interface{}{
				"donor_name":     "Alice",
				"amount":         -5,
				"payment_method": "eSewa",
			})
			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(mockService.submittedDTO).To(BeNil())
		})

		It("returns 400 on malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when the referenced donor does not exist", func() {
			mockService.submitErr = donation.ErrDonorNotFound

			body, _ := json.Marshal(map[string]interface{}{
				"donor_id":       42,
				"amount":         1000,
				"payment_method": "bank",
			})
			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 500 on an unexpected service error", func() {
			mockService.submitErr = errors.New("db down")

			body, _ := json.Marshal(map[string]interface{}{
				"donor_name":     "Alice",
				"amount":         1000,
				"payment_method": "bank",
			})
			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))

			var resp map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["success"]).To(BeFalse())
		})
	})

	Describe("UpdateStatus", func() {
		It("returns the updated donation", func() {
			mockService.updateResult = &donation.Donation{
				ID:     3,
				Status: donation.StatusCompleted,
			}

			body, _ := json.Marshal(map[string]string{"status": "completed"})
			req := httptest.NewRequest(http.MethodPatch, "/donations/3/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp struct {
				Data donation.Donation `json:"data"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Data.Status).To(Equal(donation.StatusCompleted))
		})

		It("rejects a status outside the enum", func() {
			body, _ := json.Marshal(map[string]string{"status": "refunded"})
			req := httptest.NewRequest(http.MethodPatch, "/donations/3/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a non-numeric donation ID", func() {
			body, _ := json.Marshal(map[string]string{"status": "completed"})
			req := httptest.NewRequest(http.MethodPatch, "/donations/abc/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown donation", func() {
			mockService.updateErr = donation.ErrDonationNotFound

			body, _ := json.Marshal(map[string]string{"status": "failed"})
			req := httptest.NewRequest(http.MethodPatch, "/donations/999/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GetDonor", func() {
		It("returns the donor detail", func() {
			mockService.detail = &donation.DonorDetail{
				Donor:     &donation.Donor{ID: 7, Name: "Alice"},
				Donations: []*donation.Donation{{ID: 1, DonorID: 7, Amount: 5000}},
			}

			req := httptest.NewRequest(http.MethodGet, "/donors/7", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp struct {
				Data donation.DonorDetail `json:"data"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Data.Donor.Name).To(Equal("Alice"))
			Expect(resp.Data.Donations).To(HaveLen(1))
		})

		It("returns 404 for an unknown donor", func() {
			mockService.detailErr = donation.ErrDonorNotFound

			req := httptest.NewRequest(http.MethodGet, "/donors/99", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GetStats", func() {
		It("returns the stats payload", func() {
			mockService.stats = &donation.Stats{
				TotalDonated:         10000,
				DonorCount:           4,
				ActivePaymentMethods: 2,
				AverageDonation:      2500,
			}

			req := httptest.NewRequest(http.MethodGet, "/donation-stats", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp struct {
				Data donation.Stats `json:"data"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Data.AverageDonation).To(Equal(int64(2500)))
		})
	})
})
