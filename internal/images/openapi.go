package images

import "github.com/JaimeStill/menu-lab/pkg/openapi"

type spec struct {
	Upload *openapi.Operation
	Data   *openapi.Operation
	Remove *openapi.Operation
}

var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload image",
		Description: "Stores an item image under the restaurant and returns its download URL",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type:     "object",
						Required: []string{"restaurantId", "file"},
						Properties: map[string]*openapi.Schema{
							"restaurantId": {Type: "string"},
							"file":         {Type: "string", Format: "binary"},
						},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Image stored", "ImageUpload"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			413: {Description: "File exceeds maximum upload size"},
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Data: &openapi.Operation{
		Summary:     "Download image",
		Description: "Returns the raw image bytes for an object path",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("path", "Object path, percent-encoded"),
			openapi.QueryParam("alt", "string", "Ignored; present on generated URLs", false),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Image bytes"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Remove: &openapi.Operation{
		Summary:     "Delete image",
		Description: "Deletes the object referenced by a download URL",
		RequestBody: openapi.RequestBodyJSON("RemoveImageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Image deleted", "Message"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"ImageUpload": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path": {Type: "string", Example: "restaurants/r1/foodItems/1700000000000_salad.png"},
				"url":  {Type: "string"},
			},
		},
		"RemoveImageRequest": {
			Type:     "object",
			Required: []string{"restaurantId", "url"},
			Properties: map[string]*openapi.Schema{
				"restaurantId": {Type: "string"},
				"url":          {Type: "string"},
			},
		},
		"ImageCleanupReport": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"deleted": {Type: "integer"},
				"skipped": {Type: "integer", Description: "Malformed references that were skipped"},
				"failures": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"url":    {Type: "string"},
							"reason": {Type: "string"},
						},
					},
				},
			},
		},
	}
}
