package donation_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanjaygurung/wildfolio/internal/donation"
)

func TestDonationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Donation Service Suite")
}

// Mock repository for testing. Submission mimics the transactional write:
// either everything lands or nothing does.
type mockDonationRepository struct {
	donors        map[int64]*donation.Donor
	donations     map[int64]*donation.Donation
	donationOrder []int64
	nextDonorID   int64
	nextID        int64
	submitError   error
	getError      error
}

func newMockDonationRepository() *mockDonationRepository {
	return &mockDonationRepository{
		donors:      make(map[int64]*donation.Donor),
		donations:   make(map[int64]*donation.Donation),
		nextDonorID: 1,
		nextID:      1,
	}
}

func (m *mockDonationRepository) addDonor(name string) *donation.Donor {
	d := &donation.Donor{
		ID:        m.nextDonorID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.nextDonorID++
	m.donors[d.ID] = d
	return d
}

func (m *mockDonationRepository) SubmitDonation(don *donation.Donation, newDonor *donation.Donor) error {
	if m.submitError != nil {
		return m.submitError
	}
	if newDonor != nil {
		newDonor.ID = m.nextDonorID
		m.nextDonorID++
		m.donors[newDonor.ID] = newDonor
		don.DonorID = newDonor.ID
	}
	donor, ok := m.donors[don.DonorID]
	if !ok {
		return donation.ErrDonorNotFound
	}
	don.ID = m.nextID
	m.nextID++
	m.donations[don.ID] = don
	m.donationOrder = append(m.donationOrder, don.ID)

	donor.TotalDonated += don.Amount
	donor.DonationCount++
	t := don.DonationDate
	donor.LastDonation = &t
	return nil
}

func (m *mockDonationRepository) GetDonation(id int64) (*donation.Donation, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	don, ok := m.donations[id]
	if !ok {
		return nil, donation.ErrDonationNotFound
	}
	return don, nil
}

func (m *mockDonationRepository) UpdateStatus(id int64, status string) error {
	don, ok := m.donations[id]
	if !ok {
		return donation.ErrDonationNotFound
	}
	don.Status = status
	return nil
}

func (m *mockDonationRepository) ListDonors(limit, offset int) ([]*donation.Donor, error) {
	out := make([]*donation.Donor, 0, len(m.donors))
	for _, d := range m.donors {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDonationRepository) GetDonor(id int64) (*donation.Donor, error) {
	d, ok := m.donors[id]
	if !ok {
		return nil, donation.ErrDonorNotFound
	}
	return d, nil
}

func (m *mockDonationRepository) GetDonationsByDonor(donorID int64) ([]*donation.Donation, error) {
	var out []*donation.Donation
	for _, id := range m.donationOrder {
		if m.donations[id].DonorID == donorID {
			out = append(out, m.donations[id])
		}
	}
	return out, nil
}

func (m *mockDonationRepository) ListDonationsWithDonor(limit, offset int) ([]*donation.DonationWithDonor, error) {
	var out []*donation.DonationWithDonor
	for _, id := range m.donationOrder {
		don := m.donations[id]
		out = append(out, &donation.DonationWithDonor{
			Donation:  *don,
			DonorName: m.donors[don.DonorID].Name,
		})
	}
	return out, nil
}

func (m *mockDonationRepository) CompletedTotal() (int64, error) {
	var total int64
	for _, don := range m.donations {
		if don.Status == donation.StatusCompleted {
			total += don.Amount
		}
	}
	return total, nil
}

func (m *mockDonationRepository) CountDonors() (int64, error) {
	return int64(len(m.donors)), nil
}

type mockMethodCounter struct {
	count int64
	err   error
}

func (m *mockMethodCounter) CountActive() (int64, error) {
	return m.count, m.err
}

var _ = Describe("DonationService", func() {
	var (
		service  *donation.Service
		mockRepo *mockDonationRepository
		counter  *mockMethodCounter
	)

	BeforeEach(func() {
		mockRepo = newMockDonationRepository()
		counter = &mockMethodCounter{count: 2}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = donation.NewService(mockRepo, counter, logger)
	})

	Describe("SubmitDonation", func() {
		It("records a donation for an existing donor and bumps aggregates", func() {
			donor := mockRepo.addDonor("Alice")

			don, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &donor.ID,
				Amount:        5000,
				PaymentMethod: "eSewa",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(don.ID).To(BeNumerically(">", 0))
			Expect(don.DonorID).To(Equal(donor.ID))
			Expect(don.Status).To(Equal(donation.StatusPending))
			Expect(don.Currency).To(Equal(donation.DefaultCurrency))

			Expect(donor.TotalDonated).To(Equal(int64(5000)))
			Expect(donor.DonationCount).To(Equal(int64(1)))
			Expect(donor.LastDonation).NotTo(BeNil())
		})

		It("creates a new donor when donor_id is absent", func() {
			email := "bob@example.com"
			don, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorName:     "Bob",
				DonorEmail:    &email,
				Amount:        2500,
				PaymentMethod: "bank",
				Status:        donation.StatusCompleted,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(don.DonorID).To(BeNumerically(">", 0))

			donor, err := mockRepo.GetDonor(don.DonorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(donor.Name).To(Equal("Bob"))
			Expect(donor.TotalDonated).To(Equal(int64(2500)))
			Expect(donor.DonationCount).To(Equal(int64(1)))
		})

		It("accumulates aggregates across repeated donations", func() {
			donor := mockRepo.addDonor("Alice")

			amounts := []int64{1000, 2000, 3500}
			for _, a := range amounts {
				_, err := service.SubmitDonation(donation.SubmitDonationDTO{
					DonorID:       &donor.ID,
					Amount:        a,
					PaymentMethod: "eSewa",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(donor.TotalDonated).To(Equal(int64(6500)))
			Expect(donor.DonationCount).To(Equal(int64(3)))
		})

		It("counts pending donations in donor aggregates", func() {
			donor := mockRepo.addDonor("Alice")

			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &donor.ID,
				Amount:        1000,
				PaymentMethod: "eSewa",
				Status:        donation.StatusPending,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(donor.TotalDonated).To(Equal(int64(1000)))
			Expect(donor.DonationCount).To(Equal(int64(1)))
		})

		It("rejects a non-positive amount", func() {
			donor := mockRepo.addDonor("Alice")

			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &donor.ID,
				Amount:        0,
				PaymentMethod: "eSewa",
			})

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.donations).To(BeEmpty())
		})

		It("rejects a submission without donor_id or donor_name", func() {
			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				Amount:        1000,
				PaymentMethod: "eSewa",
			})

			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown status value", func() {
			donor := mockRepo.addDonor("Alice")

			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &donor.ID,
				Amount:        1000,
				PaymentMethod: "eSewa",
				Status:        "refunded",
			})

			Expect(err).To(HaveOccurred())
		})

		It("surfaces donor-not-found from the repository", func() {
			missing := int64(42)
			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &missing,
				Amount:        1000,
				PaymentMethod: "eSewa",
			})

			Expect(err).To(Equal(donation.ErrDonorNotFound))
		})

		It("leaves no partial state behind when the write fails", func() {
			mockRepo.submitError = errors.New("connection reset")

			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorName:     "Carol",
				Amount:        9000,
				PaymentMethod: "bank",
			})

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.donations).To(BeEmpty())
			Expect(mockRepo.donors).To(BeEmpty())
		})
	})

	Describe("UpdateDonationStatus", func() {
		It("flips only the status and leaves aggregates untouched", func() {
			donor := mockRepo.addDonor("Alice")
			don, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID:       &donor.ID,
				Amount:        5000,
				PaymentMethod: "eSewa",
			})
			Expect(err).NotTo(HaveOccurred())

			totalBefore := donor.TotalDonated
			countBefore := donor.DonationCount

			updated, err := service.UpdateDonationStatus(don.ID, donation.UpdateDonationStatusDTO{
				Status: donation.StatusCompleted,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(donation.StatusCompleted))
			Expect(donor.TotalDonated).To(Equal(totalBefore))
			Expect(donor.DonationCount).To(Equal(countBefore))
		})

		It("rejects an invalid status", func() {
			_, err := service.UpdateDonationStatus(1, donation.UpdateDonationStatusDTO{Status: "paid"})
			Expect(err).To(HaveOccurred())
		})

		It("returns not found for an unknown donation", func() {
			_, err := service.UpdateDonationStatus(99, donation.UpdateDonationStatusDTO{
				Status: donation.StatusFailed,
			})
			Expect(err).To(Equal(donation.ErrDonationNotFound))
		})
	})

	Describe("GetDonorDetail", func() {
		It("returns the donor with its donation history", func() {
			donor := mockRepo.addDonor("Alice")
			for _, a := range []int64{1000, 2000} {
				_, err := service.SubmitDonation(donation.SubmitDonationDTO{
					DonorID:       &donor.ID,
					Amount:        a,
					PaymentMethod: "eSewa",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			detail, err := service.GetDonorDetail(donor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Donor.ID).To(Equal(donor.ID))
			Expect(detail.Donations).To(HaveLen(2))
		})

		It("returns not found for an unknown donor", func() {
			_, err := service.GetDonorDetail(7)
			Expect(err).To(Equal(donation.ErrDonorNotFound))
		})
	})

	Describe("GetStats", func() {
		It("totals completed donations only", func() {
			donor := mockRepo.addDonor("Alice")

			_, err := service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID: &donor.ID, Amount: 3000, PaymentMethod: "eSewa",
				Status: donation.StatusCompleted,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.SubmitDonation(donation.SubmitDonationDTO{
				DonorID: &donor.ID, Amount: 5000, PaymentMethod: "eSewa",
				Status: donation.StatusPending,
			})
			Expect(err).NotTo(HaveOccurred())

			stats, err := service.GetStats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalDonated).To(Equal(int64(3000)))
			Expect(stats.DonorCount).To(Equal(int64(1)))
			Expect(stats.ActivePaymentMethods).To(Equal(int64(2)))
			Expect(stats.AverageDonation).To(Equal(int64(3000)))
		})

		It("rounds the average to the nearest whole unit", func() {
			a := mockRepo.addDonor("Alice")
			b := mockRepo.addDonor("Bob")
			c := mockRepo.addDonor("Carol")

			for _, donorID := range []int64{a.ID, b.ID} {
				id := donorID
				_, err := service.SubmitDonation(donation.SubmitDonationDTO{
					DonorID: &id, Amount: 500, PaymentMethod: "eSewa",
					Status: donation.StatusCompleted,
				})
				Expect(err).NotTo(HaveOccurred())
			}
			_ = c

			// 1000 / 3 donors = 333.33..., rounds to 333
			stats, err := service.GetStats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.DonorCount).To(Equal(int64(3)))
			Expect(stats.AverageDonation).To(Equal(int64(333)))
		})

		It("returns a zero average when there are no donors", func() {
			stats, err := service.GetStats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalDonated).To(BeZero())
			Expect(stats.DonorCount).To(BeZero())
			Expect(stats.AverageDonation).To(BeZero())
		})

		It("propagates a payment-method counter failure", func() {
			counter.err = errors.New("db down")
			_, err := service.GetStats()
			Expect(err).To(HaveOccurred())
		})
	})
})
