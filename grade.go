package otfgrade

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-grade/internal/advice"
	"github.com/nsip/otf-grade/internal/capture"
	"github.com/nsip/otf-grade/internal/checker"
	"github.com/nsip/otf-grade/internal/history"
	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/scoring"
	"github.com/nsip/otf-grade/internal/util"
	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type OtfGradeService struct {
	// embedded web server to handle grading requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// file path or url of the rate/bandwidth table, empty for built-in
	rateSource string
	// snapshots kept per student
	historySize int

	rates   *ratetable.Store
	checker *checker.Checker
	scorer  *scoring.Scorer
	advisor *advice.Engine
	history *history.Store
}

//
// an error record as returned to the client,
// with the study recommendation for it
//
type GradedRecord struct {
	worksheet.ErrorRecord
	Recommendation string `json:"recommendation"`
}

//
// create a new service instance
//
func New(options ...Option) (*OtfGradeService, error) {

	srvc := OtfGradeService{}

	defaults := []Option{Name(""), ID(""), Host("localhost"), HistorySize(0)}
	if err := srvc.setOptions(append(defaults, options...)...); err != nil {
		return nil, err
	}

	srvc.rates = ratetable.NewStore(srvc.rateSource)
	srvc.checker = checker.New(srvc.rates)
	srvc.scorer = scoring.New()
	srvc.advisor = advice.New(nil)
	srvc.history = history.New(srvc.historySize)

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	srvc.e.POST("/grade", srvc.buildGradeHandler())
	srvc.e.POST("/capture", srvc.buildCaptureHandler())
	srvc.e.POST("/score", srvc.buildScoreHandler())
	srvc.e.GET("/history", srvc.buildStudentsHandler())
	srvc.e.GET("/history/:student", srvc.buildHistoryHandler())
	srvc.e.GET("/compare", srvc.buildCompareHandler())

	return &srvc, nil
}

//
// the underlying http handler, for embedding and tests
//
func (s *OtfGradeService) Handler() http.Handler {
	return s.e
}

//
// start the service running
//
func (s *OtfGradeService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// reads the submission from the request body;
// the tables in a worksheet are too loosely shaped for c.Bind
//
func readSubmission(c echo.Context) (*worksheet.Submission, gjson.Result, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, gjson.Result{}, errors.Wrap(err, "cannot read request body")
	}
	sub, err := worksheet.ParseSubmission(body)
	if err != nil {
		return nil, gjson.Result{}, err
	}
	return sub, gjson.ParseBytes(body), nil
}

//
// peer review scores may arrive as numbers or strings,
// anything else is passed on and ignored by the average
//
func peerScores(v gjson.Result) []string {
	scores := []string{}
	for _, p := range v.Array() {
		if p.Type == gjson.String {
			scores = append(scores, p.Str)
			continue
		}
		scores = append(scores, p.Raw)
	}
	return scores
}

func peerAverage(v gjson.Result) *float64 {
	avg, ok := scoring.PeerAverage(peerScores(v))
	if !ok {
		return nil
	}
	return &avg
}

//
// creates the main grading method
// requires a json worksheet submission, returns
// the error report, capability radar and study route
//
func (s *OtfGradeService) buildGradeHandler() echo.HandlerFunc {

	sName := s.serviceName
	sID := s.serviceID

	return func(c echo.Context) error {
		gradingID := util.GenerateID()
		defer util.TimeTrack(time.Now(), "grading "+gradingID)

		sub, doc, err := readSubmission(c)
		if err != nil {
			fmt.Println("submission error: ", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		report := s.checker.Check(sub)

		records := make([]GradedRecord, 0, len(report.Records))
		for _, rec := range report.Records {
			records = append(records, GradedRecord{ErrorRecord: rec, Recommendation: s.advisor.Recommend(rec)})
		}

		peer := peerAverage(doc.Get("peerScores"))
		tallies := scoring.Tallies(report)
		radar, err := s.scorer.Score(tallies, peer)
		if err != nil {
			c.Logger().Warn("no radar for grading ", gradingID, ": ", err)
		} else if sub.Student != "" {
			s.history.Append(sub.Student, radar.Attributes, radar.Scores)
		}

		gradeResponse := map[string]interface{}{
			"gradingID":        gradingID,
			"student":          sub.Student,
			"summary":          report.Summary,
			"counts":           report.Counts,
			"titles":           report.Titles,
			"records":          records,
			"radar":            radar,
			"analysis":         scoring.Analysis(report.Counts, scoring.Unreadable(tallies), peer),
			"studyRoute":       s.advisor.Route(report.Records),
			"gradeServiceID":   sID,
			"gradeServiceName": sName,
		}

		return c.JSON(http.StatusOK, gradeResponse)
	}
}

//
// returns the plain-text export of everything submitted
//
func (s *OtfGradeService) buildCaptureHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sub, _, err := readSubmission(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		var buf bytes.Buffer
		if err := capture.Render(&buf, sub); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buf.Bytes())
	}
}

//
// scores section counts computed elsewhere:
// {"counts": [[title, count], ...], "peerScores": [...]}
//
func (s *OtfGradeService) buildScoreHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if !gjson.ValidBytes(body) {
			return echo.NewHTTPError(http.StatusBadRequest, "request is not valid json")
		}
		doc := gjson.ParseBytes(body)

		tallies, err := scoring.ParseTallies(doc.Get("counts"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		radar, err := s.scorer.Score(tallies, peerAverage(doc.Get("peerScores")))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return c.JSON(http.StatusOK, radar)
	}
}

func (s *OtfGradeService) buildStudentsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.history.Students())
	}
}

func (s *OtfGradeService) buildHistoryHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		student := c.Param("student")
		snaps := s.history.Get(student)
		if len(snaps) == 0 {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no history for %s", student))
		}
		return c.JSON(http.StatusOK, snaps)
	}
}

//
// latest scores of every student side by side,
// needs at least 2 students graded on the same attributes
//
func (s *OtfGradeService) buildCompareHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		cmp, err := s.history.Compare()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return c.JSON(http.StatusOK, cmp)
	}
}

//
// shut the server down gracefully
//
func (s *OtfGradeService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

func (s *OtfGradeService) PrintConfig() {

	fmt.Println("\n\tOTF-Grade Service Configuration")
	fmt.Println("\t---------------------------------")
	fmt.Println()

	s.printID()
	s.printGradingConfig()

}

func (s *OtfGradeService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *OtfGradeService) printGradingConfig() {
	source := s.rates.Source()
	if source == "" {
		source = "(built-in)"
	}
	rates := s.rates.Current()
	fmt.Println("\trate table:\t\t", source)
	fmt.Println("\trate entries:\t\t", rates.Len())
	fmt.Println("\trates (kbps):\t\t", rates.Rates())
	if rates.Failed() {
		fmt.Println("\trate table problem:\t", rates.Problem())
	}
	fmt.Println("\thistory per student:\t", s.history.Size())
}
