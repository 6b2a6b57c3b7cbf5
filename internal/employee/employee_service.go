package employee

import (
	"context"
	"strconv"
	"sync"
	"time"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/calendar"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)

	// Lookup and AdjustBalance serve the leave ledger.
	Lookup(ctx context.Context, id int64) (Employee, error)
	AdjustBalance(ctx context.Context, id int64, delta int) (Employee, error)
}

type service struct {
	// mu makes id allocation + insert, and balance read-modify-write, atomic.
	mu        sync.Mutex
	repo      Repository
	counter   counter.Repository
	publisher kafka.EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, publisher kafka.EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		counter:   counter,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department", req.Department),
		zap.String("joining_date", req.JoiningDate),
	)

	// Parse before touching the counter so a bad date never burns an id.
	joiningDate, err := calendar.Parse(req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("request_id", rid),
			zap.String("joining_date", req.JoiningDate),
		)
		return EmployeeResponse{}, err
	}

	empl, err := s.insert(ctx, req, joiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	event := events.EmployeeRegisteredEvent{
		EventID:     uuid.NewString(),
		EventType:   "employee_registered",
		RequestID:   rid,
		EmployeeID:  empl.ID,
		Department:  empl.Department,
		JoiningDate: calendar.Format(empl.JoiningDate),
		OccurredAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, events.EmployeeRegisteredTopic, strconv.FormatInt(empl.ID, 10), event.EventType, event); err != nil {
		s.logger.Error("publish employee_registered failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", empl.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) insert(ctx context.Context, req CreateEmployeeRequest, joiningDate time.Time) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.counter.GetNextValue(ctx, counter.TypeEmployeeID)
	if err != nil {
		s.logger.Error("create employee allocate id failed", zap.Error(err))
		return nil, err
	}

	empl := &Employee{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		JoiningDate:  joiningDate,
		LeaveBalance: DefaultLeaveBalance,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.Lookup(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

func (s *service) Lookup(ctx context.Context, id int64) (Employee, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Employee{}, mapRepositoryError(err)
	}
	return *empl, nil
}

func (s *service) AdjustBalance(ctx context.Context, id int64, delta int) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Employee{}, mapRepositoryError(err)
	}

	next := empl.LeaveBalance + delta
	if next < 0 {
		s.logger.Warn("adjust balance would go negative",
			zap.Int64("employee_id", id),
			zap.Int("balance", empl.LeaveBalance),
			zap.Int("delta", delta),
		)
		return Employee{}, employeeerrors.ErrNegativeBalance
	}

	if err := s.repo.UpdateBalance(ctx, id, next); err != nil {
		s.logger.Error("adjust balance persist failed",
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return Employee{}, mapRepositoryError(err)
	}

	s.logger.Info("adjust balance success",
		zap.Int64("employee_id", id),
		zap.Int("from", empl.LeaveBalance),
		zap.Int("to", next),
	)
	empl.LeaveBalance = next
	return *empl, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		Name:         empl.Name,
		Email:        empl.Email,
		Department:   empl.Department,
		JoiningDate:  calendar.Format(empl.JoiningDate),
		LeaveBalance: empl.LeaveBalance,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
