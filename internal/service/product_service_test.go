package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"totem-api/internal/model"
	"totem-api/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, input model.CreateProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id int64, input model.UpdateProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func testProduct() *model.Product {
	now := time.Now()
	return &model.Product{
		ID:        1,
		SKU:       "BEB-0001",
		Name:      "Coca-Cola 350ml",
		Price:     5.5,
		Stock:     25,
		Category:  "refrigerante",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func requireAppError(t *testing.T, err error, kind model.ErrorKind) *model.Error {
	t.Helper()
	var appErr *model.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{*testProduct()}
	filters := model.ProductFilters{Category: "refrigerante", InStock: true}

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expectError bool
	}{
		{
			name:       "Success with filters",
			mockReturn: testProducts,
		},
		{
			name:       "Empty result is a valid empty list",
			mockReturn: []model.Product{},
		},
		{
			name:        "Repository error",
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("FindAll", ctx, filters).Return(tt.mockReturn, tt.mockError)

			products, err := service.GetAll(ctx, filters)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)
		product := testProduct()

		mockRepo.On("FindByID", ctx, int64(1)).Return(product, nil)

		got, err := service.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, product, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindByID", ctx, int64(999)).Return(nil, nil)

		got, err := service.GetByID(ctx, 999)

		assert.Nil(t, got)
		appErr := requireAppError(t, err, model.KindNotFound)
		assert.Equal(t, "Produto não encontrado", appErr.Message)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("database error"))

		_, err := service.GetByID(ctx, 1)

		require.Error(t, err)
		var appErr *model.Error
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestProductService_GetBySKU(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)
		product := testProduct()

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(product, nil)

		got, err := service.GetBySKU(ctx, "BEB-0001")

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindBySKU", ctx, "NONEXISTENT").Return(nil, nil)

		_, err := service.GetBySKU(ctx, "NONEXISTENT")

		requireAppError(t, err, model.KindNotFound)
	})
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	input := model.CreateProductInput{
		SKU:      "BEB-0001",
		Name:     "Coca-Cola 350ml",
		Price:    5.5,
		Stock:    25,
		Category: "refrigerante",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)
		product := testProduct()

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(nil, nil)
		mockRepo.On("Insert", ctx, input).Return(product, nil)

		got, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, product, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("SKU already exists", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(testProduct(), nil)

		_, err := service.Create(ctx, input)

		appErr := requireAppError(t, err, model.KindConflict)
		assert.Equal(t, "Produto com este SKU já existe", appErr.Message)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Unique index violation after passing the existence check", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(nil, nil)
		mockRepo.On("Insert", ctx, input).Return(nil, repository.ErrDuplicateSKU)

		_, err := service.Create(ctx, input)

		appErr := requireAppError(t, err, model.KindConflict)
		assert.Equal(t, "Produto com este SKU já existe", appErr.Message)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(nil, nil)
		mockRepo.On("Insert", ctx, input).Return(nil, errors.New("database error"))

		_, err := service.Create(ctx, input)

		require.Error(t, err)
		var appErr *model.Error
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success merging supplied fields", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		price := 6.5
		input := model.UpdateProductInput{Price: &price}
		current := testProduct()
		updated := testProduct()
		updated.Price = price

		mockRepo.On("FindByID", ctx, int64(1)).Return(current, nil)
		mockRepo.On("UpdateFields", ctx, int64(1), input).Return(updated, nil)

		got, err := service.Update(ctx, 1, input)

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindByID", ctx, int64(999)).Return(nil, nil)

		_, err := service.Update(ctx, 999, model.UpdateProductInput{})

		requireAppError(t, err, model.KindNotFound)
		mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SKU change to an existing SKU conflicts", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		newSKU := "BEB-0002"
		input := model.UpdateProductInput{SKU: &newSKU}
		other := testProduct()
		other.ID = 2
		other.SKU = newSKU

		mockRepo.On("FindByID", ctx, int64(1)).Return(testProduct(), nil)
		mockRepo.On("FindBySKU", ctx, newSKU).Return(other, nil)

		_, err := service.Update(ctx, 1, input)

		appErr := requireAppError(t, err, model.KindConflict)
		assert.Equal(t, "Já existe outro produto com este SKU", appErr.Message)
		mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unchanged SKU skips the uniqueness check", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		sameSKU := "BEB-0001"
		input := model.UpdateProductInput{SKU: &sameSKU}
		current := testProduct()

		mockRepo.On("FindByID", ctx, int64(1)).Return(current, nil)
		mockRepo.On("UpdateFields", ctx, int64(1), input).Return(current, nil)

		_, err := service.Update(ctx, 1, input)

		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
	})

	t.Run("Unique index violation during update", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		newSKU := "BEB-0002"
		input := model.UpdateProductInput{SKU: &newSKU}

		mockRepo.On("FindByID", ctx, int64(1)).Return(testProduct(), nil)
		mockRepo.On("FindBySKU", ctx, newSKU).Return(nil, nil)
		mockRepo.On("UpdateFields", ctx, int64(1), input).Return(nil, repository.ErrDuplicateSKU)

		_, err := service.Update(ctx, 1, input)

		appErr := requireAppError(t, err, model.KindConflict)
		assert.Equal(t, "Já existe outro produto com este SKU", appErr.Message)
	})

	t.Run("Row deleted between lookup and update", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindByID", ctx, int64(1)).Return(testProduct(), nil)
		mockRepo.On("UpdateFields", ctx, int64(1), model.UpdateProductInput{}).Return(nil, nil)

		_, err := service.Update(ctx, 1, model.UpdateProductInput{})

		requireAppError(t, err, model.KindNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("DeleteByID", ctx, int64(1)).Return(true, nil)

		err := service.Delete(ctx, 1)

		require.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("DeleteByID", ctx, int64(999)).Return(false, nil)

		err := service.Delete(ctx, 999)

		requireAppError(t, err, model.KindNotFound)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("DeleteByID", ctx, int64(1)).Return(false, errors.New("database error"))

		err := service.Delete(ctx, 1)

		require.Error(t, err)
		var appErr *model.Error
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestProductService_IsAvailable(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name     string
		product  *model.Product
		quantity int
		want     bool
	}{
		{
			name:     "Enough stock",
			product:  testProduct(), // stock 25
			quantity: 10,
			want:     true,
		},
		{
			name:     "Exact stock",
			product:  testProduct(),
			quantity: 25,
			want:     true,
		},
		{
			name:     "Not enough stock",
			product:  testProduct(),
			quantity: 26,
			want:     false,
		},
		{
			name:     "Unknown SKU is false, not an error",
			product:  nil,
			quantity: 1,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			if tt.product == nil {
				mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(nil, nil)
			} else {
				mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(tt.product, nil)
			}

			available, err := service.IsAvailable(ctx, "BEB-0001", tt.quantity)

			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("FindBySKU", ctx, "BEB-0001").Return(nil, errors.New("database error"))

		available, err := service.IsAvailable(ctx, "BEB-0001", 1)

		require.Error(t, err)
		assert.False(t, available)
	})
}
