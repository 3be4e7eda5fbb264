package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/complaint"
	"github.com/tracklite/attendance-backend-go/internal/handler/http/response"
)

type ComplaintHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyComplaints(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type complaintHandlerImpl struct {
	complaintService complaint.Service
}

func NewComplaintHandler(complaintService complaint.Service) ComplaintHandler {
	return &complaintHandlerImpl{
		complaintService: complaintService,
	}
}

// Submit implements ComplaintHandler.
func (h *complaintHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req complaint.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.complaintService.SubmitComplaint(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Complaint submitted", resp)
}

// Respond implements ComplaintHandler.
func (h *complaintHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req complaint.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.complaintService.RespondComplaint(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Complaint updated", resp)
}

// Get implements ComplaintHandler.
func (h *complaintHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complaintService.GetComplaint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyComplaints implements ComplaintHandler.
func (h *complaintHandlerImpl) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complaintService.GetMyComplaints(r.Context(), complaintFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Complaints, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.Total,
	})
}

// List implements ComplaintHandler.
func (h *complaintHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := complaintFilterFromQuery(r)
	filter.EmployeeID = r.URL.Query().Get("employee_id")

	resp, err := h.complaintService.ListComplaints(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Complaints, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.Total,
	})
}

func complaintFilterFromQuery(r *http.Request) complaint.Filter {
	return complaint.Filter{
		Status: complaint.Status(r.URL.Query().Get("status")),
		Page:   parseIntParam(r, "page", 1),
		Limit:  parseIntParam(r, "limit", 20),
	}
}
