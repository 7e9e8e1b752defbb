package institute

import (
	"context"
	"math"
	"sort"
	"sync"
)

// recentIncomeLimit caps the dashboard's recent payments list.
const recentIncomeLimit = 4

type (
	CourseEnrollment struct {
		Name       string `json:"name"`
		Count      int    `json:"count"`
		Percentage int    `json:"percentage"`
	}

	DashboardSummary struct {
		TotalStudents      int                `json:"totalStudents"`
		CourseDistribution []CourseEnrollment `json:"courseDistribution"`
		RevenueCollected   float64            `json:"revenueCollected"`
		PendingFees        float64            `json:"pendingFees"`
		RecentIncome       []Fee              `json:"recentIncome"`
		ActiveLeads        int                `json:"activeLeads"`
	}
)

// DashboardSummary computes the institute-wide metrics from a point-in-time
// snapshot of the students, fees and inquiries collections. The three reads
// run concurrently and are joined before any derivation; a failed read logs
// and leaves its sections at their empty values, the others stand.
func (svc *Service) DashboardSummary(ctx context.Context) DashboardSummary {
	var (
		students  []Student
		fees      []Fee
		inquiries []Inquiry
		wg        sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if students, err = svc.loadStudents(ctx); err != nil {
			svc.log.Error("dashboard: students read failed", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if fees, err = svc.loadFees(ctx); err != nil {
			svc.log.Error("dashboard: fees read failed", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if inquiries, err = svc.loadInquiries(ctx); err != nil {
			svc.log.Error("dashboard: inquiries read failed", err)
		}
	}()
	wg.Wait()

	summary := DashboardSummary{
		TotalStudents:      len(students),
		CourseDistribution: courseDistribution(students),
		ActiveLeads:        countActiveLeads(inquiries),
	}

	paid := make([]Fee, 0, len(fees))
	for _, fee := range fees {
		switch fee.Status {
		case FeePaid:
			summary.RevenueCollected += fee.Amount
			paid = append(paid, fee)
		case FeePending:
			summary.PendingFees += fee.Amount
		}
	}
	sortFeesNewestFirst(paid)
	if len(paid) > recentIncomeLimit {
		paid = paid[:recentIncomeLimit]
	}
	summary.RecentIncome = paid

	return summary
}

// courseDistribution counts students per class label. Percentages are
// rounded per course and not renormalized, so they need not sum to 100.
// Order is count descending, name ascending, so repeated calls over the
// same snapshot are byte-identical.
func courseDistribution(students []Student) []CourseEnrollment {
	counts := make(map[string]int)
	for _, s := range students {
		counts[s.Class]++
	}

	total := len(students)
	dist := make([]CourseEnrollment, 0, len(counts))
	for name, count := range counts {
		var pct int
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		dist = append(dist, CourseEnrollment{Name: name, Count: count, Percentage: pct})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Name < dist[j].Name
	})
	return dist
}

func countActiveLeads(inquiries []Inquiry) int {
	var active int
	for _, inq := range inquiries {
		if inq.Status == InquiryNew || inq.Status == InquiryContacted {
			active++
		}
	}
	return active
}
