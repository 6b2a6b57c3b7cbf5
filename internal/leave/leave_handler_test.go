package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	applyFn      func(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error)
	decideFn     func(ctx context.Context, id int64, status string) (leave.LeaveResponse, error)
	getBalanceFn func(ctx context.Context, employeeID int64) (leave.BalanceResponse, error)
	getAllFn     func(ctx context.Context) ([]leave.LeaveResponse, error)
	getByIDFn    func(ctx context.Context, id int64) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	return f.applyFn(ctx, req)
}
func (f *fakeLeaveService) Decide(ctx context.Context, id int64, status string) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, id, status)
}
func (f *fakeLeaveService) Approve(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, id, leave.StatusApproved)
}
func (f *fakeLeaveService) Reject(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, id, leave.StatusRejected)
}
func (f *fakeLeaveService) GetBalance(ctx context.Context, employeeID int64) (leave.BalanceResponse, error) {
	return f.getBalanceFn(ctx, employeeID)
}
func (f *fakeLeaveService) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}

func newTestContext(method, target, body string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func TestLeaveHandler_Apply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, int64(1), req.EmployeeID)
				assert.Equal(t, "2025-02-01", req.StartDate)
				return leave.LeaveResponse{ID: 1, EmployeeID: 1, StartDate: req.StartDate, EndDate: req.EndDate, Days: 5, Status: leave.StatusPending}, nil
			},
		}
		h := leave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/leaves", `{"employee_id":1,"start_date":"2025-02-01","end_date":"2025-02-05"}`)

		h.Apply(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 5, got.Days)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("negative missing employee id", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPost, "/leaves", `{"start_date":"2025-02-01","end_date":"2025-02-05"}`)

		h.Apply(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"negative employee not found", employeeerrors.ErrEmployeeNotFound, http.StatusNotFound, apperror.CodeNotFound},
		{"negative before joining", leaveerrors.ErrLeaveBeforeJoining, http.StatusBadRequest, apperror.CodeInvalidInput},
		{"negative invalid range", leaveerrors.ErrInvalidDateRange, http.StatusBadRequest, apperror.CodeInvalidInput},
		{"negative insufficient balance", leaveerrors.ErrInsufficientBalance, http.StatusUnprocessableEntity, apperror.CodeInvalidState},
		{"negative overlap", leaveerrors.ErrLeaveOverlap, http.StatusConflict, apperror.CodeConflict},
		{"negative unexpected", errors.New("boom"), http.StatusInternalServerError, apperror.CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeaveService{
				applyFn: func(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
					return leave.LeaveResponse{}, tt.err
				},
			}
			h := leave.NewHandler(svc)
			c, w := newTestContext(http.MethodPost, "/leaves", `{"employee_id":1,"start_date":"2025-02-01","end_date":"2025-02-05"}`)

			h.Apply(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			env := decodeEnvelope(t, w.Body.Bytes())
			assert.False(t, env.Ok)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestLeaveHandler_Decide(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id int64, status string) (leave.LeaveResponse, error) {
				assert.Equal(t, int64(3), id)
				assert.Equal(t, "Rejected", status)
				return leave.LeaveResponse{ID: id, Status: status}, nil
			},
		}
		h := leave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/leaves/3/decision", `{"status":"Rejected"}`, gin.Param{Key: "id", Value: "3"})

		h.Decide(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative invalid status", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id int64, status string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatus
			},
		}
		h := leave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/leaves/3/decision", `{"status":"maybe"}`, gin.Param{Key: "id", Value: "3"})

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, leaveerrors.ErrInvalidStatus.Message, env.Error.Message)
	})

	t.Run("negative missing status", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPost, "/leaves/3/decision", `{}`, gin.Param{Key: "id", Value: "3"})

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
	})

	t.Run("negative bad id", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPost, "/leaves/x/decision", `{"status":"Approved"}`, gin.Param{Key: "id", Value: "x"})

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_ApproveReject(t *testing.T) {
	var seen []string
	svc := &fakeLeaveService{
		decideFn: func(ctx context.Context, id int64, status string) (leave.LeaveResponse, error) {
			seen = append(seen, status)
			if len(seen) > 2 {
				return leave.LeaveResponse{}, leaveerrors.ErrAlreadyDecided
			}
			return leave.LeaveResponse{ID: id, Status: status}, nil
		},
	}
	h := leave.NewHandler(svc)

	c, w := newTestContext(http.MethodPost, "/leaves/1/approve", "", gin.Param{Key: "id", Value: "1"})
	h.Approve(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodPost, "/leaves/2/reject", "", gin.Param{Key: "id", Value: "2"})
	h.Reject(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodPost, "/leaves/1/approve", "", gin.Param{Key: "id", Value: "1"})
	h.Approve(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, apperror.CodeInvalidState, env.Error.Code)

	assert.Equal(t, []string{leave.StatusApproved, leave.StatusRejected, leave.StatusApproved}, seen)
}

func TestLeaveHandler_GetAll(t *testing.T) {
	svc := &fakeLeaveService{
		getAllFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{
				{ID: 1, EmployeeID: 1, Status: leave.StatusApproved},
				{ID: 2, EmployeeID: 2, Status: leave.StatusPending},
				{ID: 3, EmployeeID: 1, Status: leave.StatusPending},
			}, nil
		},
	}
	h := leave.NewHandler(svc)

	t.Run("success filters by employee and status", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves?employee_id=1&status=pending", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("negative bad employee filter", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves?employee_id=abc", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_GetById(t *testing.T) {
	svc := &fakeLeaveService{
		getByIDFn: func(ctx context.Context, id int64) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		},
	}
	h := leave.NewHandler(svc)
	c, w := newTestContext(http.MethodGet, "/leaves/5", "", gin.Param{Key: "id", Value: "5"})

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveHandler_GetBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			getBalanceFn: func(ctx context.Context, employeeID int64) (leave.BalanceResponse, error) {
				return leave.BalanceResponse{EmployeeID: employeeID, Name: "Pavan", LeaveBalance: 4}, nil
			},
		}
		h := leave.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/employees/2/balance", "", gin.Param{Key: "id", Value: "2"})

		h.GetBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got leave.BalanceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 4, got.LeaveBalance)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			getBalanceFn: func(ctx context.Context, employeeID int64) (leave.BalanceResponse, error) {
				return leave.BalanceResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := leave.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/employees/9/balance", "", gin.Param{Key: "id", Value: "9"})

		h.GetBalance(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
