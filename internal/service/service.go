package service

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/internal/repository"
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	queue   Enqueuer
	nowFunc func() time.Time
}

func NewService(repo repository.Repository, queue Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		queue:   queue,
		nowFunc: time.Now,
	}
}

func (s *Service) ListProducts(ctx context.Context, kind model.ProductKind, ids []string) ([]model.Product, error) {
	return s.repo.ListProducts(ctx, kind, ids)
}

// GetDress returns a dress together with its related products.
func (s *Service) GetDress(ctx context.Context, id string) (model.Product, []model.Product, error) {
	p, err := s.repo.GetProduct(ctx, model.KindDress, id)
	if err != nil {
		return model.Product{}, nil, err
	}
	var related []model.Product
	if len(p.RelatedProductIDs) > 0 {
		if related, err = s.repo.ListProducts(ctx, "", p.RelatedProductIDs); err != nil {
			return model.Product{}, nil, err
		}
	}
	return p, related, nil
}

func (s *Service) GetJewelry(ctx context.Context, id string) (model.Product, error) {
	return s.repo.GetProduct(ctx, model.KindJewelry, id)
}

func (s *Service) CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	p := model.Product{
		Kind:             req.Kind,
		Name:             req.Name,
		Style:            req.Style,
		JewelryType:      req.JewelryType,
		Price:            req.Price,
		ImageURL:         req.ImageURL,
		Images:           pq.StringArray{req.ImageURL},
		Description:      req.Description,
		Hint:             hintFromName(req.Name),
		Availability:     req.Availability,
		UnavailableDates: pq.StringArray(req.UnavailableDates),
	}
	if p.UnavailableDates == nil {
		p.UnavailableDates = pq.StringArray{}
	}
	return s.repo.CreateProduct(ctx, p)
}

// hintFromName derives the search hint from the first two words of the
// product name, lowercased.
func hintFromName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

func (s *Service) UpdateProduct(ctx context.Context, kind model.ProductKind, id string, req model.UpdateProductRequest) (model.Product, error) {
	return s.repo.UpdateProduct(ctx, kind, id, req)
}

func (s *Service) DeleteProduct(ctx context.Context, kind model.ProductKind, id string) error {
	return s.repo.DeleteProduct(ctx, kind, id)
}

func (s *Service) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	return s.repo.ListDiscounts(ctx)
}

func (s *Service) GetDiscountByCode(ctx context.Context, code string) (model.Discount, error) {
	return s.repo.GetDiscountByCode(ctx, code)
}

func (s *Service) CreateDiscount(ctx context.Context, req model.CreateDiscountRequest) (model.Discount, error) {
	return s.repo.CreateDiscount(ctx, req)
}

func (s *Service) UpdateDiscount(ctx context.Context, id string, req model.UpdateDiscountRequest) (model.Discount, error) {
	return s.repo.UpdateDiscount(ctx, id, req)
}

func (s *Service) DeleteDiscount(ctx context.Context, id string) error {
	return s.repo.DeleteDiscount(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.AppUser, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) EnsureUser(ctx context.Context, u model.AppUser) (model.AppUser, error) {
	return s.repo.EnsureUser(ctx, u)
}

func (s *Service) UpdateUserProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) (model.AppUser, error) {
	return s.repo.UpdateUserProfile(ctx, uid, req)
}

func (s *Service) UpdateUserRole(ctx context.Context, uid string, role model.UserRole) error {
	return s.repo.UpdateUserRole(ctx, uid, role)
}
