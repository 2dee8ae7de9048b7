package foods

import "github.com/JaimeStill/menu-lab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List food items",
		Description: "Returns a paginated list of the items in a section",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("restaurantId", "string", "Restaurant id", true),
			openapi.QueryParam("sectionId", "string", "Section key", true),
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields (name, price, id). Prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of food items", "FoodPageResult"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find food item",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Food item id"),
			openapi.QueryParam("restaurantId", "string", "Restaurant id", true),
			openapi.QueryParam("sectionId", "string", "Section key", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item", "Food"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create food item",
		Description: "Adds an item to a section, creating the section when it does not exist",
		RequestBody: openapi.RequestBodyJSON("CreateFoodCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item created", "FoodID"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update food item",
		Description: "Overwrites an item. Omitting images keeps the stored list; images dropped from a supplied list are deleted. When originalSectionId differs from sectionId the item moves sections",
		RequestBody: openapi.RequestBodyJSON("UpdateFoodCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item updated", "FoodMutation"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete food item",
		Description: "Removes an item and its images. Deleting a missing item succeeds",
		RequestBody: openapi.RequestBodyJSON("DeleteFoodCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Food item deleted", "FoodMutation"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	text := func(example any) *openapi.Schema {
		return &openapi.Schema{Type: "string", Description: "String or number", Example: example}
	}

	fields := map[string]*openapi.Schema{
		"name":        {Type: "string", Example: "Caesar Salad"},
		"ingredients": text("romaine, parmesan, croutons"),
		"calories":    text(350),
		"protein":     text("12g"),
		"carbs":       text(20),
		"fat":         text(18),
		"vitamins":    text("A, C"),
		"allergens":   text("dairy, gluten"),
		"foodType":    {Type: "string", Description: "Section display name. Defaults to the section key"},
		"price":       text("9.50"),
		"images":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
	}

	with := func(extra map[string]*openapi.Schema) map[string]*openapi.Schema {
		out := make(map[string]*openapi.Schema, len(fields)+len(extra))
		for k, v := range fields {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}

	return map[string]*openapi.Schema{
		"Food": {
			Type:       "object",
			Properties: with(map[string]*openapi.Schema{"id": {Type: "string"}}),
		},
		"CreateFoodCommand": {
			Type:     "object",
			Required: []string{"restaurantId", "sectionId", "name"},
			Properties: with(map[string]*openapi.Schema{
				"restaurantId": {Type: "string"},
				"sectionId":    {Type: "string"},
				"sectionName":  {Type: "string", Description: "Display name used if the section is created"},
			}),
		},
		"UpdateFoodCommand": {
			Type:     "object",
			Required: []string{"id", "restaurantId", "sectionId", "name"},
			Properties: with(map[string]*openapi.Schema{
				"id":                {Type: "string"},
				"restaurantId":      {Type: "string"},
				"sectionId":         {Type: "string"},
				"originalSectionId": {Type: "string"},
				"sectionName":       {Type: "string"},
			}),
		},
		"DeleteFoodCommand": {
			Type:     "object",
			Required: []string{"id", "restaurantId", "sectionId"},
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string"},
				"restaurantId": {Type: "string"},
				"sectionId":    {Type: "string"},
			},
		},
		"FoodID": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"id": {Type: "string"}},
		},
		"FoodMutation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message": {Type: "string"},
				"id":      {Type: "string"},
				"images":  openapi.SchemaRef("ImageCleanupReport"),
			},
		},
		"FoodPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Food")},
				"total":       {Type: "integer", Description: "Total number of results"},
				"page":        {Type: "integer", Description: "Current page number"},
				"page_size":   {Type: "integer", Description: "Results per page"},
				"total_pages": {Type: "integer", Description: "Total number of pages"},
			},
		},
	}
}
