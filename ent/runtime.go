// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/marketrate"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/schema"
	"github.com/warehouse-exchange/wex/ent/searchsession"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
	"github.com/warehouse-exchange/wex/ent/user"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	buyerneedFields := schema.BuyerNeed{}.Fields()
	_ = buyerneedFields
	// buyerneedDescRadiusMiles is the schema descriptor for radius_miles field.
	buyerneedDescRadiusMiles := buyerneedFields[7].Descriptor()
	// buyerneed.DefaultRadiusMiles holds the default value on creation for the radius_miles field.
	buyerneed.DefaultRadiusMiles = buyerneedDescRadiusMiles.Default.(float64)
	// buyerneedDescCreatedAt is the schema descriptor for created_at field.
	buyerneedDescCreatedAt := buyerneedFields[15].Descriptor()
	// buyerneed.DefaultCreatedAt holds the default value on creation for the created_at field.
	buyerneed.DefaultCreatedAt = buyerneedDescCreatedAt.Default.(func() time.Time)
	// buyerneedDescUpdatedAt is the schema descriptor for updated_at field.
	buyerneedDescUpdatedAt := buyerneedFields[16].Descriptor()
	// buyerneed.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	buyerneed.DefaultUpdatedAt = buyerneedDescUpdatedAt.Default.(func() time.Time)
	// buyerneed.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	buyerneed.UpdateDefaultUpdatedAt = buyerneedDescUpdatedAt.UpdateDefault.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[4].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[5].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	contextualmemoryFields := schema.ContextualMemory{}.Fields()
	_ = contextualmemoryFields
	// contextualmemoryDescContent is the schema descriptor for content field.
	contextualmemoryDescContent := contextualmemoryFields[3].Descriptor()
	// contextualmemory.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	contextualmemory.ContentValidator = contextualmemoryDescContent.Validators[0].(func(string) error)
	// contextualmemoryDescCreatedAt is the schema descriptor for created_at field.
	contextualmemoryDescCreatedAt := contextualmemoryFields[6].Descriptor()
	// contextualmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextualmemory.DefaultCreatedAt = contextualmemoryDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescPhone is the schema descriptor for phone field.
	conversationDescPhone := conversationFields[1].Descriptor()
	// conversation.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	conversation.PhoneValidator = conversationDescPhone.Validators[0].(func(string) error)
	// conversationDescTurnCount is the schema descriptor for turn_count field.
	conversationDescTurnCount := conversationFields[4].Descriptor()
	// conversation.DefaultTurnCount holds the default value on creation for the turn_count field.
	conversation.DefaultTurnCount = conversationDescTurnCount.Default.(int)
	// conversationDescReengagementStage is the schema descriptor for reengagement_stage field.
	conversationDescReengagementStage := conversationFields[20].Descriptor()
	// conversation.DefaultReengagementStage holds the default value on creation for the reengagement_stage field.
	conversation.DefaultReengagementStage = conversationDescReengagementStage.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[24].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[25].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	dlatokenFields := schema.DLAToken{}.Fields()
	_ = dlatokenFields
	// dlatokenDescToken is the schema descriptor for token field.
	dlatokenDescToken := dlatokenFields[1].Descriptor()
	// dlatoken.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	dlatoken.TokenValidator = dlatokenDescToken.Validators[0].(func(string) error)
	// dlatokenDescCreatedAt is the schema descriptor for created_at field.
	dlatokenDescCreatedAt := dlatokenFields[12].Descriptor()
	// dlatoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	dlatoken.DefaultCreatedAt = dlatokenDescCreatedAt.Default.(func() time.Time)
	// dlatokenDescUpdatedAt is the schema descriptor for updated_at field.
	dlatokenDescUpdatedAt := dlatokenFields[13].Descriptor()
	// dlatoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dlatoken.DefaultUpdatedAt = dlatokenDescUpdatedAt.Default.(func() time.Time)
	// dlatoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dlatoken.UpdateDefaultUpdatedAt = dlatokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	engagementFields := schema.Engagement{}.Fields()
	_ = engagementFields
	// engagementDescTourRescheduleCount is the schema descriptor for tour_reschedule_count field.
	engagementDescTourRescheduleCount := engagementFields[20].Descriptor()
	// engagement.DefaultTourRescheduleCount holds the default value on creation for the tour_reschedule_count field.
	engagement.DefaultTourRescheduleCount = engagementDescTourRescheduleCount.Default.(int)
	// engagementDescInsuranceUploaded is the schema descriptor for insurance_uploaded field.
	engagementDescInsuranceUploaded := engagementFields[30].Descriptor()
	// engagement.DefaultInsuranceUploaded holds the default value on creation for the insurance_uploaded field.
	engagement.DefaultInsuranceUploaded = engagementDescInsuranceUploaded.Default.(bool)
	// engagementDescCompanyDocsUploaded is the schema descriptor for company_docs_uploaded field.
	engagementDescCompanyDocsUploaded := engagementFields[31].Descriptor()
	// engagement.DefaultCompanyDocsUploaded holds the default value on creation for the company_docs_uploaded field.
	engagement.DefaultCompanyDocsUploaded = engagementDescCompanyDocsUploaded.Default.(bool)
	// engagementDescPaymentMethodAdded is the schema descriptor for payment_method_added field.
	engagementDescPaymentMethodAdded := engagementFields[32].Descriptor()
	// engagement.DefaultPaymentMethodAdded holds the default value on creation for the payment_method_added field.
	engagement.DefaultPaymentMethodAdded = engagementDescPaymentMethodAdded.Default.(bool)
	// engagementDescAdminFlagged is the schema descriptor for admin_flagged field.
	engagementDescAdminFlagged := engagementFields[42].Descriptor()
	// engagement.DefaultAdminFlagged holds the default value on creation for the admin_flagged field.
	engagement.DefaultAdminFlagged = engagementDescAdminFlagged.Default.(bool)
	// engagementDescCreatedAt is the schema descriptor for created_at field.
	engagementDescCreatedAt := engagementFields[43].Descriptor()
	// engagement.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagement.DefaultCreatedAt = engagementDescCreatedAt.Default.(func() time.Time)
	// engagementDescUpdatedAt is the schema descriptor for updated_at field.
	engagementDescUpdatedAt := engagementFields[44].Descriptor()
	// engagement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	engagement.DefaultUpdatedAt = engagementDescUpdatedAt.Default.(func() time.Time)
	// engagement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	engagement.UpdateDefaultUpdatedAt = engagementDescUpdatedAt.UpdateDefault.(func() time.Time)
	engagementagreementFields := schema.EngagementAgreement{}.Fields()
	_ = engagementagreementFields
	// engagementagreementDescVersion is the schema descriptor for version field.
	engagementagreementDescVersion := engagementagreementFields[3].Descriptor()
	// engagementagreement.DefaultVersion holds the default value on creation for the version field.
	engagementagreement.DefaultVersion = engagementagreementDescVersion.Default.(int)
	// engagementagreementDescCreatedAt is the schema descriptor for created_at field.
	engagementagreementDescCreatedAt := engagementagreementFields[15].Descriptor()
	// engagementagreement.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagementagreement.DefaultCreatedAt = engagementagreementDescCreatedAt.Default.(func() time.Time)
	// engagementagreementDescUpdatedAt is the schema descriptor for updated_at field.
	engagementagreementDescUpdatedAt := engagementagreementFields[16].Descriptor()
	// engagementagreement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	engagementagreement.DefaultUpdatedAt = engagementagreementDescUpdatedAt.Default.(func() time.Time)
	// engagementagreement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	engagementagreement.UpdateDefaultUpdatedAt = engagementagreementDescUpdatedAt.UpdateDefault.(func() time.Time)
	engagementeventFields := schema.EngagementEvent{}.Fields()
	_ = engagementeventFields
	// engagementeventDescEventType is the schema descriptor for event_type field.
	engagementeventDescEventType := engagementeventFields[2].Descriptor()
	// engagementevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	engagementevent.EventTypeValidator = engagementeventDescEventType.Validators[0].(func(string) error)
	// engagementeventDescCreatedAt is the schema descriptor for created_at field.
	engagementeventDescCreatedAt := engagementeventFields[8].Descriptor()
	// engagementevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagementevent.DefaultCreatedAt = engagementeventDescCreatedAt.Default.(func() time.Time)
	inboundmessageFields := schema.InboundMessage{}.Fields()
	_ = inboundmessageFields
	// inboundmessageDescPhone is the schema descriptor for phone field.
	inboundmessageDescPhone := inboundmessageFields[2].Descriptor()
	// inboundmessage.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	inboundmessage.PhoneValidator = inboundmessageDescPhone.Validators[0].(func(string) error)
	// inboundmessageDescAttempts is the schema descriptor for attempts field.
	inboundmessageDescAttempts := inboundmessageFields[6].Descriptor()
	// inboundmessage.DefaultAttempts holds the default value on creation for the attempts field.
	inboundmessage.DefaultAttempts = inboundmessageDescAttempts.Default.(int)
	// inboundmessageDescReceivedAt is the schema descriptor for received_at field.
	inboundmessageDescReceivedAt := inboundmessageFields[12].Descriptor()
	// inboundmessage.DefaultReceivedAt holds the default value on creation for the received_at field.
	inboundmessage.DefaultReceivedAt = inboundmessageDescReceivedAt.Default.(func() time.Time)
	instantbookscoreFields := schema.InstantBookScore{}.Fields()
	_ = instantbookscoreFields
	// instantbookscoreDescCreatedAt is the schema descriptor for created_at field.
	instantbookscoreDescCreatedAt := instantbookscoreFields[8].Descriptor()
	// instantbookscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	instantbookscore.DefaultCreatedAt = instantbookscoreDescCreatedAt.Default.(func() time.Time)
	marketrateFields := schema.MarketRate{}.Fields()
	_ = marketrateFields
	// marketrateDescZip is the schema descriptor for zip field.
	marketrateDescZip := marketrateFields[1].Descriptor()
	// marketrate.ZipValidator is a validator for the "zip" field. It is called by the builders before save.
	marketrate.ZipValidator = marketrateDescZip.Validators[0].(func(string) error)
	// marketrateDescState is the schema descriptor for state field.
	marketrateDescState := marketrateFields[2].Descriptor()
	// marketrate.StateValidator is a validator for the "state" field. It is called by the builders before save.
	marketrate.StateValidator = marketrateDescState.Validators[0].(func(string) error)
	// marketrateDescCreatedAt is the schema descriptor for created_at field.
	marketrateDescCreatedAt := marketrateFields[7].Descriptor()
	// marketrate.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketrate.DefaultCreatedAt = marketrateDescCreatedAt.Default.(func() time.Time)
	// marketrateDescUpdatedAt is the schema descriptor for updated_at field.
	marketrateDescUpdatedAt := marketrateFields[8].Descriptor()
	// marketrate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	marketrate.DefaultUpdatedAt = marketrateDescUpdatedAt.Default.(func() time.Time)
	// marketrate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	marketrate.UpdateDefaultUpdatedAt = marketrateDescUpdatedAt.UpdateDefault.(func() time.Time)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescInstantBookEligible is the schema descriptor for instant_book_eligible field.
	matchDescInstantBookEligible := matchFields[13].Descriptor()
	// match.DefaultInstantBookEligible holds the default value on creation for the instant_book_eligible field.
	match.DefaultInstantBookEligible = matchDescInstantBookEligible.Default.(bool)
	// matchDescWithinBudget is the schema descriptor for within_budget field.
	matchDescWithinBudget := matchFields[14].Descriptor()
	// match.DefaultWithinBudget holds the default value on creation for the within_budget field.
	match.DefaultWithinBudget = matchDescWithinBudget.Default.(bool)
	// matchDescCreatedAt is the schema descriptor for created_at field.
	matchDescCreatedAt := matchFields[17].Descriptor()
	// match.DefaultCreatedAt holds the default value on creation for the created_at field.
	match.DefaultCreatedAt = matchDescCreatedAt.Default.(func() time.Time)
	// matchDescUpdatedAt is the schema descriptor for updated_at field.
	matchDescUpdatedAt := matchFields[18].Descriptor()
	// match.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	match.DefaultUpdatedAt = matchDescUpdatedAt.Default.(func() time.Time)
	// match.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	match.UpdateDefaultUpdatedAt = matchDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescRecipient is the schema descriptor for recipient field.
	notificationDescRecipient := notificationFields[2].Descriptor()
	// notification.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	notification.RecipientValidator = notificationDescRecipient.Validators[0].(func(string) error)
	// notificationDescBody is the schema descriptor for body field.
	notificationDescBody := notificationFields[4].Descriptor()
	// notification.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	notification.BodyValidator = notificationDescBody.Validators[0].(func(string) error)
	// notificationDescAttempts is the schema descriptor for attempts field.
	notificationDescAttempts := notificationFields[9].Descriptor()
	// notification.DefaultAttempts holds the default value on creation for the attempts field.
	notification.DefaultAttempts = notificationDescAttempts.Default.(int)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[13].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	paymentrecordFields := schema.PaymentRecord{}.Fields()
	_ = paymentrecordFields
	// paymentrecordDescCreatedAt is the schema descriptor for created_at field.
	paymentrecordDescCreatedAt := paymentrecordFields[13].Descriptor()
	// paymentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentrecord.DefaultCreatedAt = paymentrecordDescCreatedAt.Default.(func() time.Time)
	// paymentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	paymentrecordDescUpdatedAt := paymentrecordFields[14].Descriptor()
	// paymentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentrecord.DefaultUpdatedAt = paymentrecordDescUpdatedAt.Default.(func() time.Time)
	// paymentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentrecord.UpdateDefaultUpdatedAt = paymentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	propertyknowledgeFields := schema.PropertyKnowledge{}.Fields()
	_ = propertyknowledgeFields
	// propertyknowledgeDescTopic is the schema descriptor for topic field.
	propertyknowledgeDescTopic := propertyknowledgeFields[2].Descriptor()
	// propertyknowledge.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	propertyknowledge.TopicValidator = propertyknowledgeDescTopic.Validators[0].(func(string) error)
	// propertyknowledgeDescContent is the schema descriptor for content field.
	propertyknowledgeDescContent := propertyknowledgeFields[3].Descriptor()
	// propertyknowledge.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	propertyknowledge.ContentValidator = propertyknowledgeDescContent.Validators[0].(func(string) error)
	// propertyknowledgeDescCreatedAt is the schema descriptor for created_at field.
	propertyknowledgeDescCreatedAt := propertyknowledgeFields[6].Descriptor()
	// propertyknowledge.DefaultCreatedAt holds the default value on creation for the created_at field.
	propertyknowledge.DefaultCreatedAt = propertyknowledgeDescCreatedAt.Default.(func() time.Time)
	// propertyknowledgeDescUpdatedAt is the schema descriptor for updated_at field.
	propertyknowledgeDescUpdatedAt := propertyknowledgeFields[7].Descriptor()
	// propertyknowledge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	propertyknowledge.DefaultUpdatedAt = propertyknowledgeDescUpdatedAt.Default.(func() time.Time)
	// propertyknowledge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	propertyknowledge.UpdateDefaultUpdatedAt = propertyknowledgeDescUpdatedAt.UpdateDefault.(func() time.Time)
	propertyquestionFields := schema.PropertyQuestion{}.Fields()
	_ = propertyquestionFields
	// propertyquestionDescQuestionText is the schema descriptor for question_text field.
	propertyquestionDescQuestionText := propertyquestionFields[5].Descriptor()
	// propertyquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	propertyquestion.QuestionTextValidator = propertyquestionDescQuestionText.Validators[0].(func(string) error)
	// propertyquestionDescCreatedAt is the schema descriptor for created_at field.
	propertyquestionDescCreatedAt := propertyquestionFields[11].Descriptor()
	// propertyquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	propertyquestion.DefaultCreatedAt = propertyquestionDescCreatedAt.Default.(func() time.Time)
	// propertyquestionDescUpdatedAt is the schema descriptor for updated_at field.
	propertyquestionDescUpdatedAt := propertyquestionFields[12].Descriptor()
	// propertyquestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	propertyquestion.DefaultUpdatedAt = propertyquestionDescUpdatedAt.Default.(func() time.Time)
	// propertyquestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	propertyquestion.UpdateDefaultUpdatedAt = propertyquestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	searchsessionFields := schema.SearchSession{}.Fields()
	_ = searchsessionFields
	// searchsessionDescToken is the schema descriptor for token field.
	searchsessionDescToken := searchsessionFields[1].Descriptor()
	// searchsession.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	searchsession.TokenValidator = searchsessionDescToken.Validators[0].(func(string) error)
	// searchsessionDescResultCount is the schema descriptor for result_count field.
	searchsessionDescResultCount := searchsessionFields[6].Descriptor()
	// searchsession.DefaultResultCount holds the default value on creation for the result_count field.
	searchsession.DefaultResultCount = searchsessionDescResultCount.Default.(int)
	// searchsessionDescDlaTriggered is the schema descriptor for dla_triggered field.
	searchsessionDescDlaTriggered := searchsessionFields[7].Descriptor()
	// searchsession.DefaultDlaTriggered holds the default value on creation for the dla_triggered field.
	searchsession.DefaultDlaTriggered = searchsessionDescDlaTriggered.Default.(bool)
	// searchsessionDescCreatedAt is the schema descriptor for created_at field.
	searchsessionDescCreatedAt := searchsessionFields[9].Descriptor()
	// searchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchsession.DefaultCreatedAt = searchsessionDescCreatedAt.Default.(func() time.Time)
	supplieragreementFields := schema.SupplierAgreement{}.Fields()
	_ = supplieragreementFields
	// supplieragreementDescCreatedAt is the schema descriptor for created_at field.
	supplieragreementDescCreatedAt := supplieragreementFields[7].Descriptor()
	// supplieragreement.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplieragreement.DefaultCreatedAt = supplieragreementDescCreatedAt.Default.(func() time.Time)
	// supplieragreementDescUpdatedAt is the schema descriptor for updated_at field.
	supplieragreementDescUpdatedAt := supplieragreementFields[8].Descriptor()
	// supplieragreement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplieragreement.DefaultUpdatedAt = supplieragreementDescUpdatedAt.Default.(func() time.Time)
	// supplieragreement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplieragreement.UpdateDefaultUpdatedAt = supplieragreementDescUpdatedAt.UpdateDefault.(func() time.Time)
	togglehistoryFields := schema.ToggleHistory{}.Fields()
	_ = togglehistoryFields
	// togglehistoryDescCreatedAt is the schema descriptor for created_at field.
	togglehistoryDescCreatedAt := togglehistoryFields[6].Descriptor()
	// togglehistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	togglehistory.DefaultCreatedAt = togglehistoryDescCreatedAt.Default.(func() time.Time)
	truthcoreFields := schema.TruthCore{}.Fields()
	_ = truthcoreFields
	// truthcoreDescTrustLevel is the schema descriptor for trust_level field.
	truthcoreDescTrustLevel := truthcoreFields[9].Descriptor()
	// truthcore.DefaultTrustLevel holds the default value on creation for the trust_level field.
	truthcore.DefaultTrustLevel = truthcoreDescTrustLevel.Default.(int)
	// truthcoreDescDockDoors is the schema descriptor for dock_doors field.
	truthcoreDescDockDoors := truthcoreFields[10].Descriptor()
	// truthcore.DefaultDockDoors holds the default value on creation for the dock_doors field.
	truthcore.DefaultDockDoors = truthcoreDescDockDoors.Default.(int)
	// truthcoreDescHasOfficeSpace is the schema descriptor for has_office_space field.
	truthcoreDescHasOfficeSpace := truthcoreFields[12].Descriptor()
	// truthcore.DefaultHasOfficeSpace holds the default value on creation for the has_office_space field.
	truthcore.DefaultHasOfficeSpace = truthcoreDescHasOfficeSpace.Default.(bool)
	// truthcoreDescHasSprinkler is the schema descriptor for has_sprinkler field.
	truthcoreDescHasSprinkler := truthcoreFields[13].Descriptor()
	// truthcore.DefaultHasSprinkler holds the default value on creation for the has_sprinkler field.
	truthcore.DefaultHasSprinkler = truthcoreDescHasSprinkler.Default.(bool)
	// truthcoreDescCreatedAt is the schema descriptor for created_at field.
	truthcoreDescCreatedAt := truthcoreFields[15].Descriptor()
	// truthcore.DefaultCreatedAt holds the default value on creation for the created_at field.
	truthcore.DefaultCreatedAt = truthcoreDescCreatedAt.Default.(func() time.Time)
	// truthcoreDescUpdatedAt is the schema descriptor for updated_at field.
	truthcoreDescUpdatedAt := truthcoreFields[16].Descriptor()
	// truthcore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	truthcore.DefaultUpdatedAt = truthcoreDescUpdatedAt.Default.(func() time.Time)
	// truthcore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	truthcore.UpdateDefaultUpdatedAt = truthcoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	uploadtokenFields := schema.UploadToken{}.Fields()
	_ = uploadtokenFields
	// uploadtokenDescToken is the schema descriptor for token field.
	uploadtokenDescToken := uploadtokenFields[1].Descriptor()
	// uploadtoken.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	uploadtoken.TokenValidator = uploadtokenDescToken.Validators[0].(func(string) error)
	// uploadtokenDescCreatedAt is the schema descriptor for created_at field.
	uploadtokenDescCreatedAt := uploadtokenFields[8].Descriptor()
	// uploadtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadtoken.DefaultCreatedAt = uploadtokenDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	warehouseFields := schema.Warehouse{}.Fields()
	_ = warehouseFields
	// warehouseDescAddress is the schema descriptor for address field.
	warehouseDescAddress := warehouseFields[2].Descriptor()
	// warehouse.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	warehouse.AddressValidator = warehouseDescAddress.Validators[0].(func(string) error)
	// warehouseDescCity is the schema descriptor for city field.
	warehouseDescCity := warehouseFields[3].Descriptor()
	// warehouse.CityValidator is a validator for the "city" field. It is called by the builders before save.
	warehouse.CityValidator = warehouseDescCity.Validators[0].(func(string) error)
	// warehouseDescState is the schema descriptor for state field.
	warehouseDescState := warehouseFields[4].Descriptor()
	// warehouse.StateValidator is a validator for the "state" field. It is called by the builders before save.
	warehouse.StateValidator = warehouseDescState.Validators[0].(func(string) error)
	// warehouseDescOutreachCount is the schema descriptor for outreach_count field.
	warehouseDescOutreachCount := warehouseFields[15].Descriptor()
	// warehouse.DefaultOutreachCount holds the default value on creation for the outreach_count field.
	warehouse.DefaultOutreachCount = warehouseDescOutreachCount.Default.(int)
	// warehouseDescCreatedAt is the schema descriptor for created_at field.
	warehouseDescCreatedAt := warehouseFields[17].Descriptor()
	// warehouse.DefaultCreatedAt holds the default value on creation for the created_at field.
	warehouse.DefaultCreatedAt = warehouseDescCreatedAt.Default.(func() time.Time)
	// warehouseDescUpdatedAt is the schema descriptor for updated_at field.
	warehouseDescUpdatedAt := warehouseFields[18].Descriptor()
	// warehouse.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	warehouse.DefaultUpdatedAt = warehouseDescUpdatedAt.Default.(func() time.Time)
	// warehouse.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	warehouse.UpdateDefaultUpdatedAt = warehouseDescUpdatedAt.UpdateDefault.(func() time.Time)
}
