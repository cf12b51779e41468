package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvMa/arpas-backend/internal/models"
)

func uploadModelFile(t *testing.T, itemID int64, contents []byte) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "model.glb")
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/items/%d/model", testServer.URL, itemID), &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := testServer.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, body
}

func TestCreateItem(t *testing.T) {
	resetTables(t)

	res, body := doRequest(t, http.MethodPost, "/items", map[string]any{
		"name":        "streetlamp",
		"description": "cast iron, three arms",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var item models.Item
	require.NoError(t, json.Unmarshal(body, &item))

	assert.NotZero(t, item.ID)
	assert.Equal(t, "streetlamp", item.Name)
	require.NotNil(t, item.Description)
	assert.Equal(t, "cast iron, three arms", *item.Description)
	assert.False(t, item.HasModel, "fresh item carries no payload")
}

func TestCreateItem_RequiresName(t *testing.T) {
	resetTables(t)

	res, body := doRequest(t, http.MethodPost, "/items", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.JSONEq(t, `{"detail":"Field 'name' is required"}`, string(body))
}

func TestItemLifecycle(t *testing.T) {
	resetTables(t)
	item := createItem(t, "bench")

	res, body := doRequest(t, http.MethodPut, fmt.Sprintf("/items/%d", item.ID), map[string]any{
		"name":        "park bench",
		"description": "weathered oak",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var updated models.Item
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "park bench", updated.Name)

	res, body = doRequest(t, http.MethodDelete, fmt.Sprintf("/items/%d", item.ID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, string(body))

	res, body = doRequest(t, http.MethodGet, fmt.Sprintf("/items/%d", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"detail":"Item not found"}`, string(body))
}

func TestListItems(t *testing.T) {
	resetTables(t)

	res, body := doRequest(t, http.MethodGet, "/items", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	first := createItem(t, "lamp")
	second := createItem(t, "fence")

	res, body = doRequest(t, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listed []models.Item
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Equal(t, []models.Item{first, second}, listed)
}

// Upload, download and clear of the binary payload, byte-for-byte.
func TestItemModelRoundTrip(t *testing.T) {
	resetTables(t)
	item := createItem(t, "kiosk")
	payload := []byte("glTF\x02\x00\x00\x00\x1c\x00\x00\x00binary model bytes")

	res, body := uploadModelFile(t, item.ID, payload)
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var uploaded models.Item
	require.NoError(t, json.Unmarshal(body, &uploaded))
	assert.True(t, uploaded.HasModel)

	res, body = doRequest(t, http.MethodGet, fmt.Sprintf("/items/%d/model", item.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/octet-stream", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "attachment")
	assert.Equal(t, payload, body)

	res, body = doRequest(t, http.MethodDelete, fmt.Sprintf("/items/%d/model", item.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var cleared models.Item
	require.NoError(t, json.Unmarshal(body, &cleared))
	assert.False(t, cleared.HasModel)

	res, body = doRequest(t, http.MethodGet, fmt.Sprintf("/items/%d/model", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"detail":"Item has no model data"}`, string(body))
}

func TestUploadModel_Errors(t *testing.T) {
	resetTables(t)
	item := createItem(t, "fountain")

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("note", "no file here"))
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/items/%d/model", testServer.URL, item.ID), &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		res, err := testServer.Client().Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"detail":"Model file is required"}`, string(body))
	})

	t.Run("missing item", func(t *testing.T) {
		res, body := uploadModelFile(t, 999, []byte("orphan"))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.JSONEq(t, `{"detail":"Item not found"}`, string(body))
	})
}

func TestDownloadModel_NoData(t *testing.T) {
	resetTables(t)
	item := createItem(t, "plain")

	res, body := doRequest(t, http.MethodGet, fmt.Sprintf("/items/%d/model", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"detail":"Item has no model data"}`, string(body))
}

// Metadata updates must not drop the stored payload.
func TestUpdateItem_KeepsModelData(t *testing.T) {
	resetTables(t)
	item := createItem(t, "v1")
	payload := []byte{0x00, 0x01, 0x02, 0xff}

	res, _ := uploadModelFile(t, item.ID, payload)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := doRequest(t, http.MethodPut, fmt.Sprintf("/items/%d", item.ID), map[string]any{
		"name": "v2",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Item
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.True(t, updated.HasModel)

	res, body = doRequest(t, http.MethodGet, fmt.Sprintf("/items/%d/model", item.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, payload, body)
}

// Instances keep their item_id after the item is gone, mirroring the
// project side of the dangling-reference behavior.
func TestDeleteItem_LeavesInstancesDangling(t *testing.T) {
	resetTables(t)
	project := createProject(t, "plaza")
	item := createItem(t, "obelisk")
	instance := createInstance(t, project.ID, item.ID)

	res, _ := doRequest(t, http.MethodDelete, fmt.Sprintf("/items/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := doRequest(t, http.MethodGet, fmt.Sprintf("/instances/%d", instance.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var dangling models.Instance
	require.NoError(t, json.Unmarshal(body, &dangling))
	assert.Equal(t, item.ID, dangling.ItemID)
}
