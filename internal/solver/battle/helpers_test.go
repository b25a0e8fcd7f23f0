package battle

import "github.com/napolitain/autoresolve/internal/models"

// lowSource makes every roll land on its lowest face
type lowSource struct{}

func (lowSource) IntN(n int) int { return 0 }

// highSource makes every roll land on its highest face
type highSource struct{}

func (highSource) IntN(n int) int { return n - 1 }

func unitsOfSize(sizes ...int) []*models.Unit {
	units := make([]*models.Unit, len(sizes))
	for i, s := range sizes {
		units[i] = &models.Unit{ID: i + 1, Type: models.Melee, Bonus: 1, Size: s}
	}
	return units
}

func forceOfSize(sizes ...int) *models.Force {
	return models.NewForce(models.Rebel, unitsOfSize(sizes...), nil)
}
