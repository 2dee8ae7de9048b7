package sections

import "github.com/JaimeStill/menu-lab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Rename *openapi.Operation
	Delete *openapi.Operation
}

var idempotencyKey = openapi.HeaderParam("Idempotency-Key", "Records the outcome; a repeat of a completed request returns it without re-running")

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List sections",
		Description: "Returns every section of a restaurant with its food items",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("restaurantId", "string", "Restaurant id", true),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Sections with items",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Section")}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find section",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Section key"),
			openapi.QueryParam("restaurantId", "string", "Restaurant id", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Section with items", "Section"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create section",
		Description: "Creates a section keyed by its normalized name",
		RequestBody: openapi.RequestBodyJSON("CreateSectionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Section created", "Section"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Rename: &openapi.Operation{
		Summary:     "Rename section",
		Description: "Copies every item to the new section key with foodType set to the new name, then deletes the originals and the old section",
		Parameters:  []*openapi.Parameter{idempotencyKey},
		RequestBody: openapi.RequestBodyJSON("RenameSectionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Section updated", "RenameSectionResult"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
			422: {Description: "Idempotency key reused with a different request"},
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete section",
		Description: "Deletes every item and its images, then the section. Image failures are reported, not fatal",
		Parameters:  []*openapi.Parameter{idempotencyKey},
		RequestBody: openapi.RequestBodyJSON("DeleteSectionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Section deleted", "DeleteSectionResult"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
			422: {Description: "Idempotency key reused with a different request"},
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Section": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":    {Type: "string", Example: "vegetarian"},
				"name":  {Type: "string", Example: "Vegetarian"},
				"items": {Type: "array", Items: openapi.SchemaRef("Food")},
			},
		},
		"CreateSectionCommand": {
			Type:     "object",
			Required: []string{"restaurantId", "name"},
			Properties: map[string]*openapi.Schema{
				"restaurantId": {Type: "string"},
				"name":         {Type: "string", Example: "Hot Drinks"},
			},
		},
		"RenameSectionCommand": {
			Type:     "object",
			Required: []string{"restaurantId", "oldSectionId", "newSectionId", "newSectionName"},
			Properties: map[string]*openapi.Schema{
				"restaurantId":   {Type: "string"},
				"oldSectionId":   {Type: "string", Example: "veg"},
				"newSectionId":   {Type: "string", Description: "Must equal newSectionName lowercased with whitespace runs replaced by _", Example: "vegetarian"},
				"newSectionName": {Type: "string", Example: "Vegetarian"},
			},
		},
		"DeleteSectionCommand": {
			Type:     "object",
			Required: []string{"restaurantId", "sectionId"},
			Properties: map[string]*openapi.Schema{
				"restaurantId": {Type: "string"},
				"sectionId":    {Type: "string", Example: "desserts"},
			},
		},
		"RenameSectionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message":     {Type: "string"},
				"operationId": {Type: "string", Format: "uuid"},
				"moved":       {Type: "integer"},
				"replayed":    {Type: "boolean"},
			},
		},
		"DeleteSectionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message":     {Type: "string"},
				"operationId": {Type: "string", Format: "uuid"},
				"deleted":     {Type: "integer"},
				"images":      openapi.SchemaRef("ImageCleanupReport"),
				"replayed":    {Type: "boolean"},
			},
		},
	}
}
