package api

import (
	"github.com/JaimeStill/menu-lab/internal/foods"
	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/sections"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Images   images.System
	Foods    foods.System
	Sections sections.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	imagesSys := images.New(
		runtime.Storage,
		runtime.Logger,
		runtime.PublicURL,
		runtime.MaxUploadSize,
	)

	foodsSys := foods.New(
		runtime.Documents,
		imagesSys,
		runtime.Locks,
		runtime.Logger,
		runtime.Pagination,
	)

	sectionsSys := sections.New(
		runtime.Documents,
		imagesSys,
		runtime.Locks,
		runtime.Logger,
	)

	return &Domain{
		Images:   imagesSys,
		Foods:    foodsSys,
		Sections: sectionsSys,
	}
}
