package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matheusvll/casaflor-api/internal/entity"
	"github.com/matheusvll/casaflor-api/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context, status string) ([]entity.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Lead, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishConversion(ctx context.Context, payload queue.ConversionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func validInput() ConvertLeadInput {
	return ConvertLeadInput{
		LeadID:    "L1",
		Title:     "Aniversário",
		StartDate: "2026-10-10",
		EndDate:   "2026-10-11",
		Type:      "birthday",
	}
}

func maria() *entity.Lead {
	return &entity.Lead{
		ID:      "L1",
		Name:    "Maria Silva",
		Contact: "maria@email.com",
		Status:  "proposal_sent",
	}
}

// TestConvertLeadSuccess - caminho feliz: lead fecha, evento nasce apontando
// para ele, fila é avisada
func TestConvertLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockEventRepo := new(MockEventRepository)
	mockQueue := new(MockQueueProducer)

	mockLeadRepo.On("FindByID", mock.Anything, "L1").Return(maria(), nil)
	mockLeadRepo.On("Update", mock.Anything, "L1", map[string]any{"status": "closed"}).
		Return(&entity.Lead{ID: "L1", Status: "closed"}, nil)
	mockEventRepo.On("Create", mock.Anything, mock.Anything).Return(&entity.Event{
		ID:        "E1",
		Title:     "Aniversário",
		StartDate: "2026-10-10",
		EndDate:   "2026-10-11",
		Type:      "birthday",
		Status:    "pending",
		ClientID:  ptr("L1"),
	}, nil)
	mockQueue.On("PublishConversion", mock.Anything, mock.Anything).Return(nil)

	uc := NewConvertLeadUseCase(mockLeadRepo, mockEventRepo, mockQueue)
	event, err := uc.Execute(ctx, validInput())

	require.NoError(t, err)
	require.NotNil(t, event.ClientID)
	assert.Equal(t, "L1", *event.ClientID)

	// O evento enviado ao repositório já carrega o client_id do lead
	sent := mockEventRepo.Calls[0].Arguments.Get(1).(*entity.Event)
	require.NotNil(t, sent.ClientID)
	assert.Equal(t, "L1", *sent.ClientID)
	assert.Equal(t, string(entity.EventStatusPending), sent.Status)

	mockLeadRepo.AssertExpectations(t)
	mockEventRepo.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

// TestConvertLeadPartialFailure - o update do lead passou mas o insert do
// evento falhou: estado parcialmente convertido, erro PARTIAL_CONVERSION
// visível, nenhum retry escondido
func TestConvertLeadPartialFailure(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockEventRepo := new(MockEventRepository)

	mockLeadRepo.On("FindByID", mock.Anything, "L1").Return(maria(), nil)
	mockLeadRepo.On("Update", mock.Anything, "L1", mock.Anything).
		Return(&entity.Lead{ID: "L1", Status: "closed"}, nil)
	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	uc := NewConvertLeadUseCase(mockLeadRepo, mockEventRepo, nil)
	event, err := uc.Execute(ctx, validInput())

	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, IsPartialConversion(err))
	assert.True(t, IsDomainError(err))

	// Só UMA tentativa de criar o evento
	mockEventRepo.AssertNumberOfCalls(t, "Create", 1)
}

// TestConvertLeadUpdateFailure - a primeira escrita falhou: nada de evento
func TestConvertLeadUpdateFailure(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockEventRepo := new(MockEventRepository)

	mockLeadRepo.On("FindByID", mock.Anything, "L1").Return(maria(), nil)
	mockLeadRepo.On("Update", mock.Anything, "L1", mock.Anything).
		Return(nil, errors.New("timeout"))

	uc := NewConvertLeadUseCase(mockLeadRepo, mockEventRepo, nil)
	event, err := uc.Execute(ctx, validInput())

	assert.Nil(t, event)
	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.False(t, IsPartialConversion(err))
	mockEventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConvertLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockEventRepo := new(MockEventRepository)

	mockLeadRepo.On("FindByID", mock.Anything, "L1").Return(nil, errors.New("lead not found: L1"))

	uc := NewConvertLeadUseCase(mockLeadRepo, mockEventRepo, nil)
	_, err := uc.Execute(ctx, validInput())

	require.Error(t, err)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeLeadNotFound, de.Code)
	mockLeadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestConvertLeadValidation(t *testing.T) {
	uc := NewConvertLeadUseCase(new(MockLeadRepository), new(MockEventRepository), nil)

	cases := []struct {
		name  string
		tweak func(*ConvertLeadInput)
	}{
		{"missing title", func(in *ConvertLeadInput) { in.Title = "" }},
		{"bad start date", func(in *ConvertLeadInput) { in.StartDate = "10/10/2026" }},
		{"end before start", func(in *ConvertLeadInput) { in.EndDate = "2026-10-01" }},
		{"unknown type", func(in *ConvertLeadInput) { in.Type = "festa" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.tweak(&input)

			_, err := uc.Execute(context.Background(), input)
			require.Error(t, err)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, CodeValidation, de.Code)
		})
	}
}

// TestConvertLeadQueueFailureIsBestEffort - a fila caiu mas a conversão já
// aconteceu: sucesso mesmo assim
func TestConvertLeadQueueFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockEventRepo := new(MockEventRepository)
	mockQueue := new(MockQueueProducer)

	mockLeadRepo.On("FindByID", mock.Anything, "L1").Return(maria(), nil)
	mockLeadRepo.On("Update", mock.Anything, "L1", mock.Anything).
		Return(&entity.Lead{ID: "L1", Status: "closed"}, nil)
	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(&entity.Event{ID: "E1", ClientID: ptr("L1")}, nil)
	mockQueue.On("PublishConversion", mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	uc := NewConvertLeadUseCase(mockLeadRepo, mockEventRepo, mockQueue)
	event, err := uc.Execute(ctx, validInput())

	require.NoError(t, err)
	assert.Equal(t, "E1", event.ID)
}

func ptr(s string) *string {
	return &s
}
