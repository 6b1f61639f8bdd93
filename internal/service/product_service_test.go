package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
)

func TestProductService_CreateProduct(t *testing.T) {
	brand := &model.Brand{ID: 1, BrandTitle: "Samsung"}
	category := &model.Category{ID: 2, CategoryTitle: "Smartphones"}

	tests := []struct {
		name          string
		product       *model.Product
		setupMock     func(*MockProductRepository, *MockBrandRepository, *MockCategoryRepository)
		expectedError string
	}{
		{
			name:    "successful creation resolves brand and category",
			product: &model.Product{ProductTitle: "Galaxy S24", Price: 79990, Quantity: 5, Brand: model.Brand{ID: 1}, Category: model.Category{ID: 2}},
			setupMock: func(p *MockProductRepository, b *MockBrandRepository, c *MockCategoryRepository) {
				b.On("FindByID", mock.Anything, int64(1)).Return(brand, nil)
				c.On("FindByID", mock.Anything, int64(2)).Return(category, nil)
				p.On("ExistsByTitle", mock.Anything, "Galaxy S24").Return(false, nil)
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
			},
		},
		{
			name:    "missing brand reported before the category is checked",
			product: &model.Product{ProductTitle: "Galaxy S24", Price: 79990, Brand: model.Brand{ID: 77}, Category: model.Category{ID: 88}},
			setupMock: func(p *MockProductRepository, b *MockBrandRepository, c *MockCategoryRepository) {
				b.On("FindByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: "Brand not found with id: 77",
		},
		{
			name:    "missing category",
			product: &model.Product{ProductTitle: "Galaxy S24", Price: 79990, Brand: model.Brand{ID: 1}, Category: model.Category{ID: 88}},
			setupMock: func(p *MockProductRepository, b *MockBrandRepository, c *MockCategoryRepository) {
				b.On("FindByID", mock.Anything, int64(1)).Return(brand, nil)
				c.On("FindByID", mock.Anything, int64(88)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: "Category not found with id: 88",
		},
		{
			name:    "duplicate title conflicts",
			product: &model.Product{ProductTitle: "Galaxy S24", Price: 79990, Brand: model.Brand{ID: 1}, Category: model.Category{ID: 2}},
			setupMock: func(p *MockProductRepository, b *MockBrandRepository, c *MockCategoryRepository) {
				b.On("FindByID", mock.Anything, int64(1)).Return(brand, nil)
				c.On("FindByID", mock.Anything, int64(2)).Return(category, nil)
				p.On("ExistsByTitle", mock.Anything, "Galaxy S24").Return(true, nil)
			},
			expectedError: errors.ErrConflict.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockBrands := new(MockBrandRepository)
			mockCategories := new(MockCategoryRepository)
			tt.setupMock(mockProducts, mockBrands, mockCategories)

			service := NewProductService(mockProducts, mockBrands, mockCategories)
			product, err := service.CreateProduct(context.Background(), tt.product)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, product)
				assert.Equal(t, int64(1), product.BrandID)
				assert.Equal(t, "Samsung", product.Brand.BrandTitle)
				assert.Equal(t, int64(2), product.CategoryID)
				assert.Equal(t, "Smartphones", product.Category.CategoryTitle)
			}

			mockProducts.AssertExpectations(t)
			mockBrands.AssertExpectations(t)
			mockCategories.AssertExpectations(t)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("missing product reported before references are resolved", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockBrands := new(MockBrandRepository)
		mockCategories := new(MockCategoryRepository)
		mockProducts.On("FindByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewProductService(mockProducts, mockBrands, mockCategories)
		product, err := service.UpdateProduct(context.Background(), 99, &model.Product{ProductTitle: "X", Brand: model.Brand{ID: 1}, Category: model.Category{ID: 2}})

		assert.Nil(t, product)
		assert.EqualError(t, err, "Product not found with id: 99")
		mockProducts.AssertExpectations(t)
		mockBrands.AssertExpectations(t)
	})

	t.Run("carries the stored version forward", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockBrands := new(MockBrandRepository)
		mockCategories := new(MockCategoryRepository)
		mockProducts.On("FindByID", mock.Anything, int64(4)).Return(&model.Product{ID: 4, Version: 2, ProductTitle: "Old"}, nil)
		mockBrands.On("FindByID", mock.Anything, int64(1)).Return(&model.Brand{ID: 1, BrandTitle: "Apple"}, nil)
		mockCategories.On("FindByID", mock.Anything, int64(2)).Return(&model.Category{ID: 2, CategoryTitle: "Laptops"}, nil)
		mockProducts.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

		service := NewProductService(mockProducts, mockBrands, mockCategories)
		product, err := service.UpdateProduct(context.Background(), 4, &model.Product{Version: 55, ProductTitle: "MacBook Air", Price: 129990, Brand: model.Brand{ID: 1}, Category: model.Category{ID: 2}})

		assert.NoError(t, err)
		assert.Equal(t, int64(4), product.ID)
		assert.Equal(t, 2, product.Version)
		mockProducts.AssertExpectations(t)
	})
}

func TestProductService_SearchProducts(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockBrands := new(MockBrandRepository)
	mockCategories := new(MockCategoryRepository)
	mockProducts.On("SearchByTitle", mock.Anything, "galaxy").Return([]model.Product{{ID: 1, ProductTitle: "Galaxy S24"}}, nil)

	service := NewProductService(mockProducts, mockBrands, mockCategories)
	products, err := service.SearchProducts(context.Background(), "galaxy")

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	mockProducts.AssertExpectations(t)
}
