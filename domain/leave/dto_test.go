package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmitLeaveRequestRequest_Validate(t *testing.T) {
	valid := SubmitLeaveRequestRequest{
		EmployeeID: "2",
		StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Reason:     "Medical appointment",
	}
	assert.NoError(t, valid.Validate())

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate())

	cases := []struct {
		name   string
		mutate func(*SubmitLeaveRequestRequest)
	}{
		{"empty employee id", func(r *SubmitLeaveRequestRequest) { r.EmployeeID = "" }},
		{"zero start date", func(r *SubmitLeaveRequestRequest) { r.StartDate = time.Time{} }},
		{"zero end date", func(r *SubmitLeaveRequestRequest) { r.EndDate = time.Time{} }},
		{"end before start", func(r *SubmitLeaveRequestRequest) {
			r.EndDate = r.StartDate.AddDate(0, 0, -1)
		}},
		{"empty reason", func(r *SubmitLeaveRequestRequest) { r.Reason = "   " }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
