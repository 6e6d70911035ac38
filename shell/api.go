package shell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path"
	"time"

	"github.com/guildroster/porter/contracts"
)

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: time.Minute}
}

// APIClient talks to the GuildRoster REST backend. It exposes one
// ResourceFetcher per resource type and the import submission endpoint.
type APIClient struct {
	client  *http.Client
	baseURL url.URL
	token   string
}

func NewAPIClient(client *http.Client, baseURL url.URL, token string) *APIClient {
	return &APIClient{client: client, baseURL: baseURL, token: token}
}

func (this *APIClient) Fetchers() map[string]contracts.ResourceFetcher {
	fetchers := make(map[string]contracts.ResourceFetcher)
	for _, resource := range contracts.ResourceTypes {
		fetchers[resource] = &resourceFetcher{client: this, resource: resource}
	}
	return fetchers
}

func (this *APIClient) SubmitImport(bundle contracts.ExportBundle) (contracts.ImportReport, error) {
	body, err := json.Marshal(bundle)
	if err != nil {
		return contracts.ImportReport{}, err
	}
	address := this.composeAddress("import")
	request, err := http.NewRequest("POST", address.String(), bytes.NewReader(body))
	if err != nil {
		return contracts.ImportReport{}, err
	}
	request.Header.Set("Content-Type", "application/json")
	this.authorize(request)

	response, err := this.client.Do(request)
	if err != nil {
		return contracts.ImportReport{}, err
	}
	defer func() { _ = response.Body.Close() }()
	if response.StatusCode != http.StatusOK {
		this.dump(request, response)
		return contracts.ImportReport{}, fmt.Errorf("non 200 status code: %s", response.Status)
	}

	var report contracts.ImportReport
	err = json.NewDecoder(response.Body).Decode(&report)
	return report, err
}

func (this *APIClient) list(resource string) ([]json.RawMessage, error) {
	address := this.composeAddress(resource)
	request, err := http.NewRequest("GET", address.String(), nil)
	if err != nil {
		return nil, err
	}
	this.authorize(request)

	response, err := this.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = response.Body.Close() }()
	if response.StatusCode != http.StatusOK {
		this.dump(request, response)
		return nil, fmt.Errorf("non 200 status code: %s", response.Status)
	}

	var records []json.RawMessage
	err = json.NewDecoder(response.Body).Decode(&records)
	return records, err
}

func (this *APIClient) composeAddress(resource string) url.URL {
	address := this.baseURL
	address.Path = path.Join(address.Path, resource) + "/"
	return address
}

func (this *APIClient) authorize(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+this.token)
}

func (this *APIClient) dump(request *http.Request, response *http.Response) {
	requestDump, _ := httputil.DumpRequestOut(request, false)
	responseDump, _ := httputil.DumpResponse(response, true)
	log.Printf("non 200 status code: \nrequest: \n%s\nresponse:\n%s", requestDump, responseDump)
}

type resourceFetcher struct {
	client   *APIClient
	resource string
}

func (this *resourceFetcher) FetchAll() ([]json.RawMessage, error) {
	return this.client.list(this.resource)
}
