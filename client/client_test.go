package client

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohit-bt/ayurveda-website/api"
	"github.com/mohit-bt/ayurveda-website/config"
	"github.com/mohit-bt/ayurveda-website/models"
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// unreachableURL points at a port nothing listens on, so every request fails
// at the transport level and triggers the offline fallback.
const unreachableURL = "http://127.0.0.1:1"

// newTestBackend starts a real API server over a temporary store.
func newTestBackend(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tempDir := t.TempDir()
	cfg := &config.Config{
		DataDir:        filepath.Join(tempDir, "data"),
		UploadsDir:     filepath.Join(tempDir, "uploads"),
		JwtSecret:      "client-test-secret",
		TokenLifetime:  24 * time.Hour,
		BcryptCost:     4,
		MaxUploadBytes: 5 * 1024 * 1024,
	}

	catalog, err := store.Open(cfg)
	require.NoError(t, err)

	router := gin.New()
	authMiddleware := utils.AuthMiddleware(cfg, catalog)

	apiGroup := router.Group("/api")
	apiGroup.GET("/products", func(c *gin.Context) { api.ListProductsHandler(c, catalog, cfg) })
	apiGroup.GET("/products/:id", func(c *gin.Context) { api.GetProductHandler(c, catalog, cfg) })
	apiGroup.GET("/profile", func(c *gin.Context) { api.GetProfileHandler(c, catalog, cfg) })
	apiGroup.POST("/upload", func(c *gin.Context) { api.UploadImageHandler(c, catalog, cfg) })
	apiGroup.POST("/products", authMiddleware, func(c *gin.Context) { api.CreateProductHandler(c, catalog, cfg) })
	apiGroup.PUT("/products", authMiddleware, func(c *gin.Context) { api.ReplaceProductHandler(c, catalog, cfg) })
	apiGroup.DELETE("/products/:id", authMiddleware, func(c *gin.Context) { api.DeleteProductHandler(c, catalog, cfg) })
	apiGroup.PUT("/profile", authMiddleware, func(c *gin.Context) { api.ReplaceProfileHandler(c, catalog, cfg) })
	apiGroup.POST("/auth/login", func(c *gin.Context) { api.LoginHandler(c, catalog, cfg) })
	apiGroup.GET("/auth/verify", authMiddleware, func(c *gin.Context) { api.VerifyHandler(c, catalog, cfg) })
	apiGroup.POST("/auth/logout", func(c *gin.Context) { api.LogoutHandler(c, catalog, cfg) })

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, catalog
}

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "snapshot.json")
}

func readSnapshotFile(t *testing.T, path string) snapshot {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestGetProducts_RefreshesSnapshot(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)
	c := New(server.URL, path)

	products, err := c.GetProducts()
	require.NoError(t, err)
	assert.Len(t, products, 6)

	snap := readSnapshotFile(t, path)
	assert.Len(t, snap.Products, 6)
	assert.False(t, snap.SavedAt.IsZero())
}

func TestGetProducts_OfflineFallback(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	_, err := c.GetProducts()
	require.NoError(t, err)

	server.Close()

	products, err := c.GetProducts()
	require.NoError(t, err, "Snapshot should serve reads while the server is down")
	assert.Len(t, products, 6)
}

func TestGetProducts_NoSnapshot(t *testing.T) {
	c := New(unreachableURL, snapshotPath(t))

	_, err := c.GetProducts()
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestGetProducts_SnapshotDisabled(t *testing.T) {
	c := New(unreachableURL, "")

	_, err := c.GetProducts()
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestGetProduct_OfflineFallback(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	_, err := c.GetProducts()
	require.NoError(t, err)

	server.Close()

	product, err := c.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, "Ashwagandha Capsules", product.Name)

	_, err = c.GetProduct(424242)
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestGetProfile_OfflineFallback(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	_, err := c.GetProfile()
	require.NoError(t, err)

	server.Close()

	profile, err := c.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Natural Health Clinic", profile.CompanyName)
}

func TestLogin(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")

	require.NoError(t, c.Login(store.DefaultAdminPassword))
	assert.NotEmpty(t, c.Token())

	valid, err := c.Verify()
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestLogin_WrongPassword(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")

	err := c.Login("wrong")
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, c.Token())
}

func TestRejectedToken_IsDiscarded(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")
	c.SetToken("garbage-token")

	valid, err := c.Verify()
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, c.Token(), "A token the server rejects must be dropped")
}

func TestLogout_ClearsTokenEvenOffline(t *testing.T) {
	c := New(unreachableURL, "")
	c.SetToken("some-token")

	require.NoError(t, c.Logout())
	assert.Empty(t, c.Token())
}

func TestCreateProduct_Online(t *testing.T) {
	server, catalog := newTestBackend(t)
	path := snapshotPath(t)
	c := New(server.URL, path)
	require.NoError(t, c.Login(store.DefaultAdminPassword))

	created, err := c.CreateProduct(models.Product{Name: "Shatavari Powder", Price: "₹350"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))

	// The product reached the server.
	fromServer, err := catalog.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shatavari Powder", fromServer.Name)

	// And the snapshot picked it up too.
	snap := readSnapshotFile(t, path)
	require.NotEmpty(t, snap.Products)
	assert.Equal(t, created.ID, snap.Products[len(snap.Products)-1].ID)
}

func TestCreateProduct_OfflineStaysLocal(t *testing.T) {
	server, catalog := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	require.NoError(t, c.Login(store.DefaultAdminPassword))
	_, err := c.GetProducts()
	require.NoError(t, err)

	server.Close()

	created, err := c.CreateProduct(models.Product{Name: "Offline Only", Price: "₹1"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0), "Offline creates get a locally assigned id")

	// Present in the snapshot, absent from the server's store.
	snap := readSnapshotFile(t, path)
	assert.Len(t, snap.Products, 7)

	_, err = catalog.GetProduct(created.ID)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestUpdateProduct_Offline(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	require.NoError(t, c.Login(store.DefaultAdminPassword))
	_, err := c.GetProducts()
	require.NoError(t, err)

	server.Close()

	updated, err := c.UpdateProduct(models.Product{ID: 1, Name: "Edited Offline", Price: "₹9"})
	require.NoError(t, err)
	assert.Equal(t, "Edited Offline", updated.Name)

	snap := readSnapshotFile(t, path)
	assert.Equal(t, "Edited Offline", snap.Products[0].Name)
}

func TestDeleteProduct_Offline(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	require.NoError(t, c.Login(store.DefaultAdminPassword))
	_, err := c.GetProducts()
	require.NoError(t, err)

	server.Close()

	require.NoError(t, c.DeleteProduct(1))

	snap := readSnapshotFile(t, path)
	assert.Len(t, snap.Products, 5)
	for _, p := range snap.Products {
		assert.NotEqual(t, int64(1), p.ID)
	}
}

func TestSaveProfile_Offline(t *testing.T) {
	server, _ := newTestBackend(t)
	path := snapshotPath(t)

	c := New(server.URL, path)
	require.NoError(t, c.Login(store.DefaultAdminPassword))

	server.Close()

	require.NoError(t, c.SaveProfile(models.Profile{CompanyName: "Offline Clinic"}))

	snap := readSnapshotFile(t, path)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Offline Clinic", snap.Profile.CompanyName)
}

func TestSaveProfile_ServerError(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")

	// No token: the write fails before anything is saved.
	err := c.SaveProfile(models.Profile{CompanyName: "Nope"})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestUploadImage(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")

	imagePath := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake png bytes"), 0644))

	url, err := c.UploadImage(imagePath)
	require.NoError(t, err)
	assert.Regexp(t, `^/uploads/image-\d+-\d+\.png$`, url)
}

func TestUploadImage_NotAnImage(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, "")

	notesPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notesPath, []byte("hello"), 0644))

	_, err := c.UploadImage(notesPath)
	var statusErr *APIStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, "Only image files are allowed", statusErr.Message)
}
