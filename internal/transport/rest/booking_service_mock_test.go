package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/booking"
)

var _ bookingService = &bookingServiceMock{}

type bookingServiceMock struct {
	ListRoomsFunc      func(ctx context.Context) ([]domain.Room, error)
	RoomScheduleFunc   func(ctx context.Context, roomID uuid.UUID, day time.Time) ([]domain.RoomBooking, error)
	ListMyBookingsFunc func(ctx context.Context) ([]domain.RoomBooking, error)
	CreateBookingFunc  func(ctx context.Context, input booking.CreateBookingInput) (*domain.RoomBooking, error)
	CancelBookingFunc  func(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error)

	calls struct {
		ListRooms []struct {
			Ctx context.Context
		}
		RoomSchedule []struct {
			Ctx    context.Context
			RoomID uuid.UUID
			Day    time.Time
		}
		ListMyBookings []struct {
			Ctx context.Context
		}
		CreateBooking []struct {
			Ctx   context.Context
			Input booking.CreateBookingInput
		}
		CancelBooking []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListRooms      sync.RWMutex
	lockRoomSchedule   sync.RWMutex
	lockListMyBookings sync.RWMutex
	lockCreateBooking  sync.RWMutex
	lockCancelBooking  sync.RWMutex
}

func (mock *bookingServiceMock) ListRooms(ctx context.Context) ([]domain.Room, error) {
	if mock.ListRoomsFunc == nil {
		panic("bookingServiceMock.ListRoomsFunc: method is nil but bookingService.ListRooms was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListRooms.Lock()
	mock.calls.ListRooms = append(mock.calls.ListRooms, callInfo)
	mock.lockListRooms.Unlock()
	return mock.ListRoomsFunc(ctx)
}

func (mock *bookingServiceMock) ListRoomsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRooms.RLock()
	calls := mock.calls.ListRooms
	mock.lockListRooms.RUnlock()
	return calls
}

func (mock *bookingServiceMock) RoomSchedule(ctx context.Context, roomID uuid.UUID, day time.Time) ([]domain.RoomBooking, error) {
	if mock.RoomScheduleFunc == nil {
		panic("bookingServiceMock.RoomScheduleFunc: method is nil but bookingService.RoomSchedule was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
		Day    time.Time
	}{Ctx: ctx, RoomID: roomID, Day: day}
	mock.lockRoomSchedule.Lock()
	mock.calls.RoomSchedule = append(mock.calls.RoomSchedule, callInfo)
	mock.lockRoomSchedule.Unlock()
	return mock.RoomScheduleFunc(ctx, roomID, day)
}

func (mock *bookingServiceMock) RoomScheduleCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
	Day    time.Time
} {
	mock.lockRoomSchedule.RLock()
	calls := mock.calls.RoomSchedule
	mock.lockRoomSchedule.RUnlock()
	return calls
}

func (mock *bookingServiceMock) ListMyBookings(ctx context.Context) ([]domain.RoomBooking, error) {
	if mock.ListMyBookingsFunc == nil {
		panic("bookingServiceMock.ListMyBookingsFunc: method is nil but bookingService.ListMyBookings was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListMyBookings.Lock()
	mock.calls.ListMyBookings = append(mock.calls.ListMyBookings, callInfo)
	mock.lockListMyBookings.Unlock()
	return mock.ListMyBookingsFunc(ctx)
}

func (mock *bookingServiceMock) ListMyBookingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMyBookings.RLock()
	calls := mock.calls.ListMyBookings
	mock.lockListMyBookings.RUnlock()
	return calls
}

func (mock *bookingServiceMock) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.RoomBooking, error) {
	if mock.CreateBookingFunc == nil {
		panic("bookingServiceMock.CreateBookingFunc: method is nil but bookingService.CreateBooking was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input booking.CreateBookingInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBooking.Lock()
	mock.calls.CreateBooking = append(mock.calls.CreateBooking, callInfo)
	mock.lockCreateBooking.Unlock()
	return mock.CreateBookingFunc(ctx, input)
}

func (mock *bookingServiceMock) CreateBookingCalls() []struct {
	Ctx   context.Context
	Input booking.CreateBookingInput
} {
	mock.lockCreateBooking.RLock()
	calls := mock.calls.CreateBooking
	mock.lockCreateBooking.RUnlock()
	return calls
}

func (mock *bookingServiceMock) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.RoomBooking, error) {
	if mock.CancelBookingFunc == nil {
		panic("bookingServiceMock.CancelBookingFunc: method is nil but bookingService.CancelBooking was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockCancelBooking.Lock()
	mock.calls.CancelBooking = append(mock.calls.CancelBooking, callInfo)
	mock.lockCancelBooking.Unlock()
	return mock.CancelBookingFunc(ctx, id)
}

func (mock *bookingServiceMock) CancelBookingCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockCancelBooking.RLock()
	calls := mock.calls.CancelBooking
	mock.lockCancelBooking.RUnlock()
	return calls
}
