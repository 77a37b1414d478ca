package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
)

type academicApi struct {
	courses    *academic.CourseManager
	students   *academic.StudentManager
	activities *academic.ActivityManager
}

func registerAcademicAPI(e *echo.Echo, app *dashboard.App) {
	api := academicApi{
		courses:    app.Courses,
		students:   app.Students,
		activities: app.Activities,
	}

	cg := e.Group("/courses")
	cg.GET("", api.listCourses)
	cg.POST("", api.createCourse)
	cg.GET("/cards", api.courseCards)
	cg.GET("/options", api.courseOptions)
	cg.PUT("/:id", api.updateCourse)
	cg.DELETE("/:id", api.deleteCourse)

	sg := e.Group("/students")
	sg.GET("", api.listStudents)
	sg.POST("", api.saveStudent)
	sg.GET("/new", api.newStudent)
	sg.POST("/cancel", api.cancelStudent)
	sg.GET("/:id/edit", api.editStudent)
	sg.DELETE("/:id", api.deleteStudent)

	ag := e.Group("/activities")
	ag.GET("", api.listActivities)
	ag.POST("", api.saveActivity)
	ag.GET("/new", api.newActivity)
	ag.POST("/cancel", api.cancelActivity)
	ag.GET("/:id/edit", api.editActivity)
	ag.DELETE("/:id", api.deleteActivity)
}

// Courses

func (api *academicApi) listCourses(ctx echo.Context) error {
	rows, err := api.courses.List(ctx.Request().Context(), ctx.QueryParam(searchParam))
	if err != nil {
		return errors.Wrap(err, "listing courses")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *academicApi) courseCards(ctx echo.Context) error {
	cards, err := api.courses.Cards(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing course cards")
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *academicApi) courseOptions(ctx echo.Context) error {
	opts, err := api.courses.Options(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing course options")
	}
	return ctx.JSON(http.StatusOK, opts)
}

func (api *academicApi) createCourse(ctx echo.Context) error {
	var data academic.CourseInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseInput")
	}
	course, err := api.courses.Save(ctx.Request().Context(), 0, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, messageResponse{Message: academic.MsgCourseCreated, Data: course})
}

func (api *academicApi) updateCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var data academic.CourseInput
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseInput")
	}
	course, err := api.courses.Save(ctx.Request().Context(), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgCourseUpdated, Data: course})
}

func (api *academicApi) deleteCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.courses.Delete(ctx.Request().Context(), id, confirmation(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgCourseDeleted})
}

// Students

func (api *academicApi) listStudents(ctx echo.Context) error {
	rows, err := api.students.List(ctx.Request().Context(), ctx.QueryParam(searchParam))
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *academicApi) newStudent(ctx echo.Context) error {
	form, err := api.students.New(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "preparing student form")
	}
	return ctx.JSON(http.StatusOK, form)
}

func (api *academicApi) editStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	form, err := api.students.Edit(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "preparing student form")
	}
	return ctx.JSON(http.StatusOK, form)
}

func (api *academicApi) cancelStudent(ctx echo.Context) error {
	api.students.Cancel()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) saveStudent(ctx echo.Context) error {
	var data academic.StudentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentInput")
	}
	s, created, err := api.students.Save(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	if created {
		return ctx.JSON(http.StatusCreated, messageResponse{Message: academic.MsgStudentCreated, Data: s})
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgStudentUpdated, Data: s})
}

func (api *academicApi) deleteStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.students.Delete(ctx.Request().Context(), id, confirmation(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgStudentDeleted})
}

// Activities

func (api *academicApi) listActivities(ctx echo.Context) error {
	courseID, err := queryCourse(ctx)
	if err != nil {
		return err
	}
	rows, err := api.activities.List(ctx.Request().Context(), academic.ActivityFilter{CourseID: courseID}, ctx.QueryParam(searchParam))
	if err != nil {
		return errors.Wrap(err, "listing activities")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *academicApi) newActivity(ctx echo.Context) error {
	form, err := api.activities.New(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "preparing activity form")
	}
	return ctx.JSON(http.StatusOK, form)
}

func (api *academicApi) editActivity(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	form, err := api.activities.Edit(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "preparing activity form")
	}
	return ctx.JSON(http.StatusOK, form)
}

func (api *academicApi) cancelActivity(ctx echo.Context) error {
	api.activities.Cancel()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) saveActivity(ctx echo.Context) error {
	var data academic.ActivityInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActivityInput")
	}
	a, created, err := api.activities.Save(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	if created {
		return ctx.JSON(http.StatusCreated, messageResponse{Message: academic.MsgActivityCreated, Data: a})
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgActivityUpdated, Data: a})
}

func (api *academicApi) deleteActivity(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.activities.Delete(ctx.Request().Context(), id, confirmation(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: academic.MsgActivityDeleted})
}
