package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/CodeBridge/Converter/internal/classifier"
	"github.com/CodeBridge/Converter/internal/convert"
	"github.com/CodeBridge/Converter/internal/model"
	"github.com/CodeBridge/Converter/internal/report"
)

// Server 对外的 HTTP JSON 接口，薄薄一层胶水
type Server struct {
	service *convert.Service
	logger  *zap.Logger
}

func NewServer(service *convert.Service, logger *zap.Logger) *Server {
	return &Server{service: service, logger: logger}
}

// Router 组装路由
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/classify", s.handleClassify).Methods("POST")
	api.HandleFunc("/execute", s.handleExecute).Methods("POST")
	api.HandleFunc("/convert", s.handleConvert).Methods("POST")
	return r
}

type classifyRequest struct {
	Code string `json:"code"`
}

type classifyResponse struct {
	Language string `json:"language"`
	Display  string `json:"display"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lang := classifier.Classify(req.Code)
	writeJSON(w, classifyResponse{Language: string(lang), Display: lang.Display()})
}

type executeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type executeResponse struct {
	Outcome *model.ExecutionOutcome `json:"outcome"`
	Report  string                  `json:"report"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lang := model.ParseLanguage(req.Language)
	s.logger.Info("Received execute request", zap.String("language", string(lang)))

	outcome := s.service.Execute(r.Context(), req.Code, lang)
	writeJSON(w, executeResponse{Outcome: outcome, Report: report.Format(outcome)})
}

type convertRequest struct {
	Code           string `json:"code"`
	TargetLanguage string `json:"target_language"`
	Run            bool   `json:"run"`
}

type convertResponse struct {
	DetectedLanguage string                  `json:"detected_language"`
	Info             string                  `json:"info"`
	ConvertedCode    string                  `json:"converted_code"`
	Outcome          *model.ExecutionOutcome `json:"outcome,omitempty"`
	Report           string                  `json:"report,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task := &model.ConvertTask{
		ID:         uuid.NewString(),
		SourceCode: req.Code,
		TargetLang: model.ParseLanguage(req.TargetLanguage),
		Run:        req.Run,
		ResultChan: make(chan *model.ConvertResult, 1),
	}
	s.logger.Info("Received convert task",
		zap.String("task_id", task.ID),
		zap.String("target", string(task.TargetLang)),
		zap.Bool("run", task.Run))

	if err := s.service.Submit(task); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	select {
	case res := <-task.ResultChan:
		resp := convertResponse{
			DetectedLanguage: string(res.DetectedLang),
			Info:             res.Info,
			ConvertedCode:    res.ConvertedCode,
			Outcome:          res.Outcome,
		}
		if res.Outcome != nil {
			resp.Report = report.Format(res.Outcome)
		}
		writeJSON(w, resp)
	case <-r.Context().Done():
		// 客户端已经走了，结果留给 channel 缓冲吸收
		s.logger.Warn("Client gone before task finished", zap.String("task_id", task.ID))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
