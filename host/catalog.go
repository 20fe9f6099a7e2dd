package host

import "github.com/zond/consoleutil/formtype"

// ClassInfo describes one polymorphic form class of the host and the
// form type its instances report.
type ClassInfo struct {
	Name string
	Type formtype.FormType
}

// Catalog lists the form classes the host defines, base classes first.
var Catalog = []ClassInfo{
	{"TESForm", formtype.NONE},
	{"TESObject", formtype.NONE},
	{"TESBoundObject", formtype.NONE},
	{"MagicItem", formtype.NONE},
	{"TESBoundAnimObject", formtype.NONE},
	{"TESActorBase", formtype.NONE},
	{"BGSStoryManagerTreeForm", formtype.NONE},
	{"BGSStoryManagerNodeBase", formtype.NONE},
	{"BGSKeyword", formtype.KYWD},
	{"BGSLocationRefType", formtype.LCRT},
	{"BGSAction", formtype.AACT},
	{"BGSTransform", formtype.TRNS},
	{"BGSComponent", formtype.CMPO},
	{"BGSTextureSet", formtype.TXST},
	{"BGSMenuIcon", formtype.MICN},
	{"TESGlobal", formtype.GLOB},
	{"BGSDamageType", formtype.DMGT},
	{"TESClass", formtype.CLAS},
	{"TESFaction", formtype.FACT},
	{"BGSHeadPart", formtype.HDPT},
	{"TESEyes", formtype.EYES},
	{"TESRace", formtype.RACE},
	{"TESSound", formtype.SOUN},
	{"BGSAcousticSpace", formtype.ASPC},
	{"EffectSetting", formtype.MGEF},
	{"Script", formtype.SCPT},
	{"TESLandTexture", formtype.LTEX},
	{"EnchantmentItem", formtype.ENCH},
	{"SpellItem", formtype.SPEL},
	{"ScrollItem", formtype.SCRL},
	{"TESObjectACTI", formtype.ACTI},
	{"BGSTalkingActivator", formtype.TACT},
	{"TESObjectARMO", formtype.ARMO},
	{"TESObjectBOOK", formtype.BOOK},
	{"TESObjectCONT", formtype.CONT},
	{"TESObjectDOOR", formtype.DOOR},
	{"IngredientItem", formtype.INGR},
	{"TESObjectLIGH", formtype.LIGH},
	{"TESObjectMISC", formtype.MISC},
	{"TESObjectSTAT", formtype.STAT},
	{"BGSStaticCollection", formtype.SCOL},
	{"BGSMovableStatic", formtype.MSTT},
	{"TESGrass", formtype.GRAS},
	{"TESObjectTREE", formtype.TREE},
	{"TESFlora", formtype.FLOR},
	{"TESFurniture", formtype.FURN},
	{"TESObjectWEAP", formtype.WEAP},
	{"TESAmmo", formtype.AMMO},
	{"TESNPC", formtype.NPC_},
	{"TESLevCharacter", formtype.LVLN},
	{"TESKey", formtype.KEYM},
	{"AlchemyItem", formtype.ALCH},
	{"BGSIdleMarker", formtype.IDLM},
	{"BGSNote", formtype.NOTE},
	{"BGSProjectile", formtype.PROJ},
	{"BGSHazard", formtype.HAZD},
	{"BGSBendableSpline", formtype.BNDS},
	{"TESSoulGem", formtype.SLGM},
	{"BGSTerminal", formtype.TERM},
	{"TESLevItem", formtype.LVLI},
	{"TESWeather", formtype.WTHR},
	{"TESClimate", formtype.CLMT},
	{"BGSShaderParticleGeometryData", formtype.SPGD},
	{"BGSReferenceEffect", formtype.RFCT},
	{"TESRegion", formtype.REGN},
	{"NavMeshInfoMap", formtype.NAVI},
	{"TESObjectCELL", formtype.CELL},
	{"TESObjectREFR", formtype.REFR},
	{"Explosion", formtype.REFR},
	{"Projectile", formtype.REFR},
	{"Actor", formtype.ACHR},
	{"PlayerCharacter", formtype.ACHR},
	{"MissileProjectile", formtype.PMIS},
	{"ArrowProjectile", formtype.PARW},
	{"GrenadeProjectile", formtype.PGRE},
	{"BeamProjectile", formtype.PBEA},
	{"FlameProjectile", formtype.PFLA},
	{"ConeProjectile", formtype.PCON},
	{"BarrierProjectile", formtype.PBAR},
	{"Hazard", formtype.PHZD},
	{"TESWorldSpace", formtype.WRLD},
	{"TESObjectLAND", formtype.LAND},
	{"NavMesh", formtype.NAVM},
	{"TESTopic", formtype.DIAL},
	{"TESTopicInfo", formtype.INFO},
	{"TESQuest", formtype.QUST},
	{"TESIdleForm", formtype.IDLE},
	{"TESPackage", formtype.PACK},
	{"AlarmPackage", formtype.PACK},
	{"DialoguePackage", formtype.PACK},
	{"FleePackage", formtype.PACK},
	{"SpectatorPackage", formtype.PACK},
	{"TrespassPackage", formtype.PACK},
	{"TESCombatStyle", formtype.CSTY},
	{"TESLoadScreen", formtype.LSCR},
	{"TESLevSpell", formtype.LVSP},
	{"TESObjectANIO", formtype.ANIO},
	{"TESWaterForm", formtype.WATR},
	{"TESEffectShader", formtype.EFSH},
	{"BGSExplosion", formtype.EXPL},
	{"BGSDebris", formtype.DEBR},
	{"TESImageSpace", formtype.IMGS},
	{"TESImageSpaceModifier", formtype.IMAD},
	{"BGSListForm", formtype.FLST},
	{"BGSPerk", formtype.PERK},
	{"BGSBodyPartData", formtype.BPTD},
	{"BGSAddonNode", formtype.ADDN},
	{"ActorValueInfo", formtype.AVIF},
	{"BGSCameraShot", formtype.CAMS},
	{"BGSCameraPath", formtype.CPTH},
	{"BGSVoiceType", formtype.VTYP},
	{"BGSMaterialType", formtype.MATT},
	{"BGSImpactData", formtype.IPCT},
	{"BGSImpactDataSet", formtype.IPDS},
	{"TESObjectARMA", formtype.ARMA},
	{"BGSEncounterZone", formtype.ECZN},
	{"BGSLocation", formtype.LCTN},
	{"BGSMessage", formtype.MESG},
	{"BGSDefaultObjectManager", formtype.DOBJ},
	{"BGSDefaultObject", formtype.DFOB},
	{"BGSLightingTemplate", formtype.LGTM},
	{"BGSMusicType", formtype.MUSC},
	{"BGSFootstep", formtype.FSTP},
	{"BGSFootstepSet", formtype.FSTS},
	{"BGSStoryManagerBranchNode", formtype.SMBN},
	{"BGSStoryManagerQuestNode", formtype.SMQN},
	{"BGSStoryManagerEventNode", formtype.SMEN},
	{"BGSDialogueBranch", formtype.DLBR},
	{"BGSMusicTrackFormWrapper", formtype.MUST},
	{"TESWordOfPower", formtype.WOOP},
	{"TESShout", formtype.SHOU},
	{"BGSEquipSlot", formtype.EQUP},
	{"BGSRelationship", formtype.RELA},
	{"BGSScene", formtype.SCEN},
	{"BGSAssociationType", formtype.ASTP},
	{"BGSOutfit", formtype.OTFT},
	{"BGSArtObject", formtype.ARTO},
	{"BGSMaterialObject", formtype.MATO},
	{"BGSMovementType", formtype.MOVT},
	{"BGSSoundDescriptorForm", formtype.SNDR},
	{"BGSDualCastData", formtype.DUAL},
	{"BGSSoundCategory", formtype.SNCT},
	{"BGSSoundOutput", formtype.SOPM},
	{"BGSCollisionLayer", formtype.COLL},
	{"BGSColorForm", formtype.CLFM},
	{"BGSReverbParameters", formtype.REVB},
	{"BGSPackIn", formtype.PKIN},
	{"BGSAimModel", formtype.AMDL},
	{"BGSConstructibleObject", formtype.COBJ},
	{"BGSMod::Attachment::Mod", formtype.OMOD},
	{"BGSMaterialSwap", formtype.MSWP},
	{"BGSZoomData", formtype.ZOOM},
	{"BGSInstanceNamingRules", formtype.INNR},
	{"BGSSoundKeywordMapping", formtype.KSSM},
	{"BGSAudioEffectChain", formtype.AECH},
	{"BGSAttractionRule", formtype.AORU},
	{"BGSSoundCategorySnapshot", formtype.SCSN},
	{"BGSSoundTagSet", formtype.STAG},
	{"BGSLensFlare", formtype.LENS},
	{"BGSGodRays", formtype.GDRY},
}
