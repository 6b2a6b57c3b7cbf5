package leave

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go-leave/internal/employee"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/calendar"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory is the part of the employee directory the ledger reads and
// writes. employee.Service satisfies it.
type Directory interface {
	Lookup(ctx context.Context, id int64) (employee.Employee, error)
	AdjustBalance(ctx context.Context, id int64, delta int) (employee.Employee, error)
}

type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, id int64, status string) (LeaveResponse, error)
	Approve(ctx context.Context, id int64) (LeaveResponse, error)
	Reject(ctx context.Context, id int64) (LeaveResponse, error)
	GetBalance(ctx context.Context, employeeID int64) (BalanceResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id int64) (LeaveResponse, error)
}

type service struct {
	// mu serializes apply (validate + insert) and decide (check + deduct +
	// status change) so balances and overlaps are checked against a
	// stable ledger.
	mu        sync.Mutex
	repo      Repository
	directory Directory
	counter   counter.Repository
	publisher kafka.EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, directory Directory, counter counter.Repository, publisher kafka.EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		directory: directory,
		counter:   counter,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	l, err := s.apply(ctx, req)
	if err != nil {
		s.logger.Warn("apply leave rejected",
			zap.String("request_id", rid),
			zap.Int64("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	event := events.LeaveRequestedEvent{
		EventID:        uuid.NewString(),
		EventType:      "leave_requested",
		RequestID:      rid,
		LeaveRequestID: l.ID,
		EmployeeID:     l.EmployeeID,
		StartDate:      calendar.Format(l.StartDate),
		EndDate:        calendar.Format(l.EndDate),
		Days:           l.Days,
		OccurredAt:     s.now(),
	}
	s.publish(ctx, events.LeaveRequestedTopic, l.EmployeeID, event.EventType, event)

	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Int64("leave_id", l.ID),
		zap.Int64("employee_id", l.EmployeeID),
		zap.Int("days", l.Days),
	)
	return mapToResponse(*l), nil
}

// apply runs the validation pipeline in order and stops at the first
// failure. The balance is only read here; approval deducts it.
func (s *service) apply(ctx context.Context, req ApplyLeaveRequest) (*LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	empl, err := s.directory.Lookup(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	startDate, err := calendar.Parse(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := calendar.Parse(req.EndDate)
	if err != nil {
		return nil, err
	}

	if startDate.Before(empl.JoiningDate) {
		return nil, leaveerrors.ErrLeaveBeforeJoining
	}
	if endDate.Before(startDate) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	days := calendar.DaysInclusive(startDate, endDate)
	if days > empl.LeaveBalance {
		return nil, leaveerrors.ErrInsufficientBalance
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, empl.ID, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return nil, err
	}
	if overlap {
		return nil, leaveerrors.ErrLeaveOverlap
	}

	id, err := s.counter.GetNextValue(ctx, counter.TypeLeaveRequestID)
	if err != nil {
		s.logger.Error("apply leave allocate id failed", zap.Error(err))
		return nil, err
	}

	l := &LeaveRequest{
		ID:         id,
		EmployeeID: empl.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Status:     StatusPending,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed",
			zap.Int64("leave_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return l, nil
}

func (s *service) Approve(ctx context.Context, id int64) (LeaveResponse, error) {
	return s.Decide(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id int64) (LeaveResponse, error) {
	return s.Decide(ctx, id, StatusRejected)
}

func (s *service) Decide(ctx context.Context, id int64, status string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.Int64("leave_id", id),
		zap.String("target_status", status),
	)

	l, balanceAfter, err := s.decide(ctx, id, status)
	if err != nil {
		s.logger.Warn("decide leave rejected",
			zap.String("request_id", rid),
			zap.Int64("leave_id", id),
			zap.String("target_status", status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	event := events.LeaveDecidedEvent{
		EventID:        uuid.NewString(),
		EventType:      "leave_decided",
		RequestID:      rid,
		LeaveRequestID: l.ID,
		EmployeeID:     l.EmployeeID,
		Status:         l.Status,
		Days:           l.Days,
		BalanceAfter:   balanceAfter,
		OccurredAt:     s.now(),
	}
	s.publish(ctx, events.LeaveDecidedTopic, l.EmployeeID, event.EventType, event)

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.Int64("leave_id", l.ID),
		zap.String("status", l.Status),
		zap.Int("balance_after", balanceAfter),
	)
	return mapToResponse(*l), nil
}

func (s *service) decide(ctx context.Context, id int64, status string) (*LeaveRequest, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	if !isDecisionStatus(status) {
		return nil, 0, leaveerrors.ErrInvalidStatus
	}
	if l.Status != StatusPending {
		return nil, 0, leaveerrors.ErrAlreadyDecided
	}

	empl, err := s.directory.Lookup(ctx, l.EmployeeID)
	if err != nil {
		return nil, 0, err
	}
	balanceAfter := empl.LeaveBalance

	if status == StatusApproved {
		if empl.LeaveBalance < l.Days {
			return nil, 0, leaveerrors.ErrInsufficientBalance
		}
		updated, err := s.directory.AdjustBalance(ctx, l.EmployeeID, -l.Days)
		if err != nil {
			return nil, 0, err
		}
		balanceAfter = updated.LeaveBalance
	}

	now := s.now()
	l.Status = status
	l.DecidedAt = &now
	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.Int64("leave_id", id),
			zap.Error(err),
		)
		if status == StatusApproved {
			if _, refundErr := s.directory.AdjustBalance(ctx, l.EmployeeID, l.Days); refundErr != nil {
				s.logger.Error("decide leave refund failed",
					zap.Int64("leave_id", id),
					zap.Int64("employee_id", l.EmployeeID),
					zap.Error(refundErr),
				)
			}
		}
		return nil, 0, mapRepositoryError(err)
	}
	return l, balanceAfter, nil
}

func isDecisionStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

func (s *service) GetBalance(ctx context.Context, employeeID int64) (BalanceResponse, error) {
	empl, err := s.directory.Lookup(ctx, employeeID)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{
		EmployeeID:   empl.ID,
		Name:         empl.Name,
		LeaveBalance: empl.LeaveBalance,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) publish(ctx context.Context, topic string, employeeID int64, eventType string, event any) {
	if err := s.publisher.Publish(ctx, topic, strconv.FormatInt(employeeID, 10), eventType, event); err != nil {
		s.logger.Error("publish leave event failed",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  calendar.Format(l.StartDate),
		EndDate:    calendar.Format(l.EndDate),
		Days:       l.Days,
		Status:     l.Status,
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
