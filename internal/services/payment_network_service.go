package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"payment-config-service/internal/events"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
)

// PaymentNetworkService handles business logic for card/wallet networks
type PaymentNetworkService interface {
	ListNetworks(filters *models.PaymentNetworkFilters, page, limit int) ([]models.PaymentNetwork, *models.PaginationInfo, error)
	GetNetwork(id uint) (*models.PaymentNetwork, error)
	CreateNetwork(ctx context.Context, req *models.CreatePaymentNetworkRequest) (*models.PaymentNetwork, error)
	UpdateNetwork(ctx context.Context, id uint, req *models.UpdatePaymentNetworkRequest) (*models.PaymentNetwork, error)
	DeleteNetwork(ctx context.Context, id uint, force bool) error
	RestoreNetwork(ctx context.Context, id uint) (*models.PaymentNetwork, error)
}

type paymentNetworkService struct {
	repo      repository.PaymentNetworkRepository
	publisher *events.Publisher
}

// NewPaymentNetworkService creates a new network service instance
func NewPaymentNetworkService(repo repository.PaymentNetworkRepository, publisher *events.Publisher) PaymentNetworkService {
	return &paymentNetworkService{repo: repo, publisher: publisher}
}

// NormalizeTags flattens the tag shapes clients actually send: a JSON
// array, a JSON-encoded string of an array, a comma separated string, or a
// single scalar. Blank entries are dropped, duplicates keep their first
// position.
func NormalizeTags(raw interface{}) (pq.StringArray, error) {
	if raw == nil {
		return nil, nil
	}

	var candidates []string
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			candidates = append(candidates, fmt.Sprintf("%v", item))
		}
	case []string:
		candidates = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
				return nil, invalidf("tags string is not a valid JSON array")
			}
			candidates = decoded
		} else {
			candidates = strings.Split(trimmed, ",")
		}
	case float64, int, bool:
		candidates = []string{fmt.Sprintf("%v", v)}
	default:
		return nil, invalidf("unsupported tags shape %T", raw)
	}

	seen := make(map[string]struct{}, len(candidates))
	var tags pq.StringArray
	for _, tag := range candidates {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *paymentNetworkService) ListNetworks(filters *models.PaymentNetworkFilters, page, limit int) ([]models.PaymentNetwork, *models.PaginationInfo, error) {
	return s.repo.List(filters, page, limit)
}

func (s *paymentNetworkService) GetNetwork(id uint) (*models.PaymentNetwork, error) {
	return s.repo.GetByID(id)
}

func (s *paymentNetworkService) CreateNetwork(ctx context.Context, req *models.CreatePaymentNetworkRequest) (*models.PaymentNetwork, error) {
	tags, err := NormalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	network := &models.PaymentNetwork{
		Name:     strings.TrimSpace(req.Name),
		Tags:     tags,
		IsActive: true,
	}
	if req.IsActive != nil {
		network.IsActive = *req.IsActive
	}

	if err := s.repo.Create(network); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "payment_network", "created", network.ID, nil)
	return network, nil
}

func (s *paymentNetworkService) UpdateNetwork(ctx context.Context, id uint, req *models.UpdatePaymentNetworkRequest) (*models.PaymentNetwork, error) {
	attrs := map[string]interface{}{}
	if req.Name != nil {
		attrs["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Tags != nil {
		tags, err := NormalizeTags(req.Tags)
		if err != nil {
			return nil, err
		}
		attrs["tags"] = tags
	}
	if req.IsActive != nil {
		attrs["is_active"] = *req.IsActive
	}

	network, err := s.repo.Update(id, attrs)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "payment_network", "updated", id, nil)
	return network, nil
}

func (s *paymentNetworkService) DeleteNetwork(ctx context.Context, id uint, force bool) error {
	if err := s.repo.Delete(id, force); err != nil {
		return err
	}
	s.publisher.Publish(ctx, "payment_network", "deleted", id, nil)
	return nil
}

func (s *paymentNetworkService) RestoreNetwork(ctx context.Context, id uint) (*models.PaymentNetwork, error) {
	network, err := s.repo.Restore(id)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, "payment_network", "restored", id, nil)
	return network, nil
}
