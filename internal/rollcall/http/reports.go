package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/quorumhq/rollcall/internal/rollcall/domain"
	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type ReportsHandler struct {
	ReportService *service.ReportService
}

// parseWindow reads startDate/endDate query params. The end date is extended
// to the end of its day so a plain YYYY-MM-DD range is inclusive.
func parseWindow(r *http.Request) (domain.DateRange, *rollcallsdk.APIError) {
	startRaw := r.URL.Query().Get("startDate")
	endRaw := r.URL.Query().Get("endDate")
	if startRaw == "" || endRaw == "" {
		return domain.DateRange{}, rollcallsdk.ErrBadRequest.WithMessage("startDate and endDate are required")
	}

	start, err := parseDate(startRaw)
	if err != nil {
		return domain.DateRange{}, rollcallsdk.ErrBadRequest.WithMessage("startDate must be RFC 3339 or YYYY-MM-DD")
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return domain.DateRange{}, rollcallsdk.ErrBadRequest.WithMessage("endDate must be RFC 3339 or YYYY-MM-DD")
	}

	end = end.Add(24*time.Hour - time.Nanosecond)
	if end.Before(start) {
		return domain.DateRange{}, rollcallsdk.ErrBadRequest.WithMessage("endDate precedes startDate")
	}
	return domain.DateRange{Start: start, End: end}, nil
}

func toDateRange(w domain.DateRange) rollcallsdk.DateRange {
	return rollcallsdk.DateRange{
		Start: w.Start.Format("2006-01-02"),
		End:   w.End.Format("2006-01-02"),
	}
}

// HandleCommitteeReport godoc
//
//	@Summary		Committee Report Endpoint
//	@Description	Attendance aggregation for every active member of a committee across its COMPLETED and ONGOING meetings in the window.
//	@Description	Members with no record for a meeting count as ABSENT.
//	@Tags			Reports
//	@Produce		json
//	@Param			id			path		string	true	"Committee ID"
//	@Param			startDate	query		string	true	"Window start (YYYY-MM-DD)"
//	@Param			endDate		query		string	true	"Window end (YYYY-MM-DD, inclusive)"
//	@Success		200			{object}	rollcallsdk.CommitteeReport
//	@Failure		400			{object}	rollcallsdk.APIError	"error, message"
//	@Failure		403			{object}	rollcallsdk.APIError	"error, message"
//	@Failure		404			{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/reports/committee/{id} [get].
func (h *ReportsHandler) HandleCommitteeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	report, err := h.ReportService.CommitteeReport(ctx, caller.ID, caller.Role, r.PathValue("id"), window)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportForbidden):
			rollcallsdk.ErrForbidden.WithMessage("not a member of this committee").WriteError(w)
		case errors.Is(err, service.ErrCommitteeNotFound):
			rollcallsdk.ErrNotFound.WithMessage("committee not found").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to build committee report", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	members := make([]rollcallsdk.CommitteeReportMember, 0, len(report.Members))
	for _, member := range report.Members {
		members = append(members, rollcallsdk.CommitteeReportMember{
			User:        toUserSummary(member.User),
			Attendances: toAttendanceRecords(member.Records),
			Statistics:  toStatistics(member.Statistics),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.CommitteeReport{
		Committee: rollcallsdk.CommitteeReportCommittee{
			ID:          report.Committee.ID,
			Name:        report.Committee.Name,
			Description: report.Committee.Description,
		},
		DateRange:     toDateRange(report.Range),
		TotalMeetings: report.TotalMeetings,
		Members:       members,
	})
}

// HandleMemberReport godoc
//
//	@Summary		Member Report Endpoint
//	@Description	One member's attendance across their committees in the window, optionally narrowed with the committeeId query param.
//	@Description	Members may only fetch their own report; admins may fetch anyone's.
//	@Tags			Reports
//	@Produce		json
//	@Param			userId		path		string	true	"User ID"
//	@Param			startDate	query		string	true	"Window start (YYYY-MM-DD)"
//	@Param			endDate		query		string	true	"Window end (YYYY-MM-DD, inclusive)"
//	@Param			committeeId	query		string	false	"Narrow to one committee"
//	@Success		200			{object}	rollcallsdk.MemberReport
//	@Failure		400			{object}	rollcallsdk.APIError	"error, message"
//	@Failure		403			{object}	rollcallsdk.APIError	"error, message"
//	@Failure		404			{object}	rollcallsdk.APIError	"error, message"
//	@Security		BearerAuth
//	@Router			/reports/member/{userId} [get].
func (h *ReportsHandler) HandleMemberReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := identityFromContext(ctx)
	if !ok {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	window, apiErr := parseWindow(r)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	report, err := h.ReportService.MemberReport(ctx, caller.ID, caller.Role,
		r.PathValue("userId"), r.URL.Query().Get("committeeId"), window)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportForbidden):
			rollcallsdk.ErrForbidden.WithMessage("may only view your own report").WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			rollcallsdk.ErrNotFound.WithMessage("user not found").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to build member report", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	committees := make([]rollcallsdk.MemberCommitteeReport, 0, len(report.Committees))
	for _, block := range report.Committees {
		committees = append(committees, rollcallsdk.MemberCommitteeReport{
			Committee:  toCommitteeRef(block.Committee),
			Meetings:   toAttendanceRecords(block.Records),
			Statistics: toStatistics(block.Statistics),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MemberReport{
		User:              toUserSummary(report.User),
		DateRange:         toDateRange(report.Range),
		Committees:        committees,
		OverallStatistics: toStatistics(report.Overall),
	})
}
